// Package errors provides structured error messages for the admin service.
//
// Every error carries a code (e.g., "E101") that maps to a category, a
// short message, and a longer explanation. Errors wrap their cause so
// errors.Is and errors.As keep working through them.
//
// # Error Categories
//
//   - config: configuration file and environment problems
//   - document: legal document lookup and storage failures
//   - render: markup serialization failures
//   - server: HTTP listener problems
//
// # Usage
//
//	err := errors.New("E101").Wrap(jsonErr).WithSuggestion("Check plebisadmin.json")
//	fmt.Fprintln(os.Stderr, err.Format())
package errors
