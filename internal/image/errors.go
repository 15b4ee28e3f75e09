package image

import "errors"

var (
	ErrInvalidOptions = errors.New("invalid build options")
	ErrArchQuery      = errors.New("architecture query failed")
)
