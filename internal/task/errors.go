package task

import "errors"

var (
	ErrInstanceNotFound   = errors.New("instance not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrBadDataset         = errors.New("unreadable task dataset")
)
