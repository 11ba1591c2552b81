package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrStorageUpload = errors.New("file upload failed")
	ErrStorageList   = errors.New("file listing failed")
	ErrStorageDelete = errors.New("file deletion failed")
)

func NewFileNotFoundError(fileID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrFileNotFound,
		Details:    fmt.Sprintf("No file with id %s", fileID),
	}
}

// NewStorageError wraps a bucket operation failure. The underlying transport
// error is preserved untouched in Cause.
func NewStorageError(operation string, sentinel error, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        sentinel,
		Details:    fmt.Sprintf("Storage %s operation failed", operation),
		Cause:      cause,
	}
}
