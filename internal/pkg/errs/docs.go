// Package errs provides the typed errors shared by the delivery tracking
// domain, application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New... and New...WithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
package errs
