// Package handler is the first entry point for business logic after
// the router.
//
// It binds requests, runs input validation through the validation
// package, and calls the appropriate service layer. It acts as the
// interface between the HTTP request and the core business logic.
package handler
