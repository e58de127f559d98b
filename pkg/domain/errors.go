package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRowSum is matched by every RowSumError.
var ErrRowSum = errors.New("transition row does not sum to 1")

// ErrRange is matched by every RangeError.
var ErrRange = errors.New("transition probability outside [0,1]")

// ErrShape is matched by every ShapeError.
var ErrShape = errors.New("transition matrix has invalid shape")

// ErrLabel is matched by every LabelError.
var ErrLabel = errors.New("invalid state label")

// ErrUnknownState is matched by every UnknownStateError.
var ErrUnknownState = errors.New("unknown state")

// ErrEmptyInput is returned when statistics are requested for zero trials.
var ErrEmptyInput = errors.New("no trials to aggregate")

// ErrInvalidLength is returned when a trial of fewer than one step is requested.
var ErrInvalidLength = errors.New("trial length must be at least 1")

// ErrModelRequired is returned when a simulator is built without a validated model.
var ErrModelRequired = errors.New("validated transition model is required")

// ErrInvalidConfig is returned for run parameters outside their domain.
var ErrInvalidConfig = errors.New("invalid configuration")

// RowSumError names the first matrix row whose probabilities do not add up to 1.
type RowSumError struct {
	Row   int
	State string
	Sum   float64
}

func (e *RowSumError) Error() string {
	return fmt.Sprintf("row %d (%q) sums to %.10g, expected 1", e.Row, e.State, e.Sum)
}

func (e *RowSumError) Is(target error) bool {
	return target == ErrRowSum
}

// Entry locates a single matrix cell.
type Entry struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

// RangeError lists every matrix cell outside [0,1].
type RangeError struct {
	Entries []Entry
}

func (e *RangeError) Error() string {
	cells := make([]string, 0, len(e.Entries))
	for _, en := range e.Entries {
		cells = append(cells, fmt.Sprintf("[%d][%d]=%g", en.Row, en.Col, en.Value))
	}
	return fmt.Sprintf("%d entries outside [0,1]: %s", len(e.Entries), strings.Join(cells, ", "))
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// ShapeError reports a matrix that is empty, not square, or misaligned with its labels.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "invalid matrix shape: " + e.Reason
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// LabelError reports an empty or duplicated state label.
type LabelError struct {
	Index int
	Label string
	// Duplicate is true when Label already appeared at an earlier index.
	Duplicate bool
}

func (e *LabelError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("state %d: duplicate label %q", e.Index, e.Label)
	}
	return fmt.Sprintf("state %d: empty label", e.Index)
}

func (e *LabelError) Is(target error) bool {
	return target == ErrLabel
}

// UnknownStateError is returned when a label is not part of the model.
type UnknownStateError struct {
	State State
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", string(e.State))
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}
