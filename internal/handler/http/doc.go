// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers and middleware of the REST API.
// Authentication, request tracing, access logging and response compression
// are handled here before requests reach the service layer.
package http
