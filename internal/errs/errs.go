// Package errs defines the error types the API returns to clients.
//
// Every failed request, no matter where the failure originated,
// is shaped into the same JSON envelope:
//
//	{ "success": false, "error": "...", "details": ["..."] }
//
// so clients can rely on a single consistent error contract.
package errs
