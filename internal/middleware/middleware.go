// Package middleware contains the HTTP middleware stack: CORS,
// request logging, panic recovery, request-ID correlation, the
// request-scoped logger, optional tracing, and the global error
// handler that shapes every failure into the API error envelope.
package middleware
