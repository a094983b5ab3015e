package stats

import "errors"

var (
	// ErrUnsupportedQuestionType aborts a quiz computation that met an unknown question type.
	ErrUnsupportedQuestionType = errors.New("unsupported question type")
	// ErrInvalidInput reports a violated precondition such as misaligned tag lists.
	ErrInvalidInput = errors.New("invalid statistics input")
)
