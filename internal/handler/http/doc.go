// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the
// server-rendered pages and the JSON lookup endpoint. Cross-cutting concerns
// such as request tracing, access logging, and panic recovery are handled in
// this package before requests are delegated to the service layer.
package http
