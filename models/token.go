package models

// LoginResponse is returned by a successful login: the user's public fields
// plus a fresh access token and refresh token.
type LoginResponse struct {
	User
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessTokenResponse is returned when a refresh token is exchanged for a new
// access token.
type AccessTokenResponse struct {
	Token string `json:"token"`
}
