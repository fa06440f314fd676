package models

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	// Version is the configured application version.
	Version string `json:"version"`

	// BuildDate and BuildCommit come from linker flags and are "N/A" for
	// local builds.
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

