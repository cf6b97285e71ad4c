package classifier

import (
	"errors"
)

var (
	// ErrEmptyTrainingSet is returned when a prior or likelihood is requested
	// from a model that was trained on zero posts.
	ErrEmptyTrainingSet = errors.New("classifier: no training posts")
	// ErrUntrainedModel is returned when a prediction is requested from a
	// model with no labels.
	ErrUntrainedModel = errors.New("classifier: model has no labels")
	// ErrTrainerFrozen is returned when a post is added after the trainer has
	// produced its model.
	ErrTrainerFrozen = errors.New("classifier: trainer already produced a model")
	// ErrStoreCountInvalid is returned when a store reports a word in more
	// posts than were trained for its label.
	ErrStoreCountInvalid = errors.New("classifier: token in more documents than documents trained")
)

// ErrLabelDoesNotExist is the error returned when a label wasn't seen in training.
type ErrLabelDoesNotExist string

func (e ErrLabelDoesNotExist) Error() string {
	return "classifier: label " + string(e) + " does not exist"
}

// ErrMissingField is the error returned when a record lacks a required field.
type ErrMissingField string

func (e ErrMissingField) Error() string {
	return "classifier: record has no " + string(e) + " field"
}

// SourceUnavailableError reports that a post source could not be opened or
// parsed.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return "classifier: source " + e.Source + " unavailable: " + e.Err.Error()
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
