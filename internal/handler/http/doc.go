// Package http implements the HTTP transport layer of the chirpy server.
//
// It exposes route wiring, request handlers and middleware for the REST API,
// the static file server and the admin pages. Cross-cutting concerns such as
// authentication, request tracing, access logging, metrics, request timeouts
// and response compression are handled in this package before requests are
// delegated to the service layer.
package http
