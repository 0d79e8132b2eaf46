// Package validation contains the logic for validating
// request data.
//
// Request payload types implement Validatable; the package binds the
// incoming request into them, runs their rules, and converts every
// failure into the API's error envelope so clients receive the full
// list of failed constraints in one response.
package validation
