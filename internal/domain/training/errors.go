package training

import "errors"

var (
	ErrTrainingNotFound   = errors.New("training not found")
	ErrAssignmentNotFound = errors.New("training assignment not found")
)
