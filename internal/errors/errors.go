package errors

import "fmt"

// ErrorCode represents a Satchel error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"        // 404
	ErrMoveNotAllowed ErrorCode = "MOVE_NOT_ALLOWED" // 409
	ErrImportFailed   ErrorCode = "IMPORT_FAILED"    // 422
	ErrInternal       ErrorCode = "INTERNAL"         // 500
)

// SatchelError represents a structured error with code, status, and details.
type SatchelError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SatchelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SatchelError {
	return &SatchelError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a site record cannot be found.
func NewNotFound(identifier string) *SatchelError {
	return &SatchelError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("site not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewMoveNotAllowed creates a 409 error for moves that would cycle the
// folder tree.
func NewMoveNotAllowed(sourceFolderID, destFolderID int) *SatchelError {
	return &SatchelError{
		Code:    ErrMoveNotAllowed,
		Status:  409,
		Message: fmt.Sprintf("cannot move folder %d into folder %d", sourceFolderID, destFolderID),
		Details: map[string]any{"source_folder_id": sourceFolderID, "dest_folder_id": destFolderID},
	}
}

// NewImportFailed creates a 422 error for bookmark files that cannot be
// imported.
func NewImportFailed(path string, cause error) *SatchelError {
	msg := fmt.Sprintf("import of %q failed", path)
	if cause != nil {
		msg = fmt.Sprintf("import of %q failed: %v", path, cause)
	}
	return &SatchelError{
		Code:    ErrImportFailed,
		Status:  422,
		Message: msg,
		Details: map[string]any{"path": path},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *SatchelError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SatchelError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a SatchelError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SatchelError); ok {
		return sErr.Code == code
	}
	return false
}
