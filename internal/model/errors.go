package model

import "fmt"

// DataValidationError signals that the data handed to a model operation is
// unusable, such as an update without an assigned ID or a payload missing
// required fields.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

func dataValidationErrorf(format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}
