package model

import (
	"math"

	"github.com/aretw0/chain/pkg/domain"
)

// Tolerance is the maximum absolute deviation of a row sum from 1.
const Tolerance = 1e-8

// Validate checks that matrix is a row-stochastic K×K table for the K labels in states.
//
// Shape and label problems are reported first. Then every row must sum to 1
// within Tolerance (*domain.RowSumError, first offending row), and finally every
// entry must lie in [0,1] (*domain.RangeError, all offending entries).
func Validate(matrix [][]float64, states []string) error {
	if err := validateShape(matrix, states); err != nil {
		return err
	}
	if err := validateLabels(states); err != nil {
		return err
	}

	for i, row := range matrix {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		// Written so that NaN and Inf sums fail as well.
		if !(math.Abs(sum-1) <= Tolerance) {
			return &domain.RowSumError{Row: i, State: states[i], Sum: sum}
		}
	}

	var bad []domain.Entry
	for i, row := range matrix {
		for j, p := range row {
			if p < 0 || p > 1 {
				bad = append(bad, domain.Entry{Row: i, Col: j, Value: p})
			}
		}
	}
	if len(bad) > 0 {
		return &domain.RangeError{Entries: bad}
	}

	return nil
}

func validateShape(matrix [][]float64, states []string) error {
	k := len(states)
	if k == 0 {
		return &domain.ShapeError{Reason: "at least one state is required"}
	}
	if len(matrix) != k {
		return &domain.ShapeError{Reason: "matrix row count does not match state count"}
	}
	for _, row := range matrix {
		if len(row) != k {
			return &domain.ShapeError{Reason: "matrix is not square"}
		}
	}
	return nil
}

func validateLabels(states []string) error {
	seen := make(map[string]int, len(states))
	for i, s := range states {
		if s == "" {
			return &domain.LabelError{Index: i}
		}
		if _, dup := seen[s]; dup {
			return &domain.LabelError{Index: i, Label: s, Duplicate: true}
		}
		seen[s] = i
	}
	return nil
}
