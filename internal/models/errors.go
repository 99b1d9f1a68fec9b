package models

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrMalformedRequest = errors.New("malformed request")
	ErrNotDirectory     = errors.New("path is not a directory")
	ErrRootDelete       = errors.New("cannot delete root directory")
	ErrPathEscapesRoot  = errors.New("path escapes card root")
	ErrTruncatedBody    = errors.New("multipart body truncated")
	ErrRemoveIncomplete = errors.New("failed to delete directory completely")
)
