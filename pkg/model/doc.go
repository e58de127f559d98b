/*
Package model validates and holds the transition matrix of a finite Markov chain.

A Model is the only way to hand a matrix to the simulator, so holding a *Model
means the matrix passed Validate. The matrix is copied on construction and never
exposed by reference.

	m, err := model.New(model.Config{
		States: []string{"A", "B"},
		Matrix: [][]float64{{0.5, 0.5}, {0, 1}},
	})
*/
package model
