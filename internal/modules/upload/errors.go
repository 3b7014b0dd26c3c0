package upload

import "errors"

var (
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file exceeds the size limit")
	ErrInvalidExtension = errors.New("file extension not allowed")
	ErrUnknownURL       = errors.New("url does not belong to this store")
)
