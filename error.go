package replyaux

import "fmt"

// InvalidHeaderNameError indicates that a string could not be converted
// into a valid HTTP header field name.  This error only occurs when a
// decorator is constructed, never while a request is being handled.
//
// A hardcoded invalid header name is a programming defect, so callers
// building route configuration should treat this error as fatal.
type InvalidHeaderNameError struct {
	// Name is the original, offending name
	Name string
}

// Error fulfills the error interface
func (e *InvalidHeaderNameError) Error() string {
	return fmt.Sprintf("invalid header name: %q", e.Name)
}

// InvalidHeaderValueError indicates that a string could not be converted
// into a valid HTTP header field value, e.g. because it contains control
// characters.  As with InvalidHeaderNameError, this error only occurs at
// construction time and should abort the enclosing configuration build.
type InvalidHeaderValueError struct {
	// Value is the original, offending value
	Value string
}

// Error fulfills the error interface
func (e *InvalidHeaderValueError) Error() string {
	return fmt.Sprintf("invalid header value: %q", e.Value)
}
