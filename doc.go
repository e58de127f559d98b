/*
Package chain simulates a discrete-time, finite-state Markov chain over the
lifecycle of a loan guarantee request (Submitted, Under Review, Approved,
Disbursed, Follow-up) and aggregates state-visit statistics across trials.

# Concept

A run is three steps composed linearly:

  - Transition Model (pkg/model): validates and holds the row-stochastic matrix.
  - Chain Simulator (pkg/simulator): produces one state sequence per trial.
  - Statistics Aggregator (pkg/stats): turns a batch of trials into frequencies
    and mean dwell times.

The Engine in this package wires them together with logging, metrics and
tracing. Rendering is left to the caller: a Result carries plain slices and maps
that any plotting or reporting sink can consume.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/chain"
		"github.com/aretw0/chain/pkg/model"
	)

	func main() {
		eng, err := chain.New(model.Config{
			States: []string{"SE", "ER", "AP", "DE", "SG"},
			Matrix: [][]float64{
				{0.2, 0.8, 0.0, 0.0, 0.0},
				{0.3, 0.1, 0.6, 0.0, 0.0},
				{0.0, 0.0, 0.1, 0.9, 0.0},
				{0.0, 0.0, 0.0, 0.3, 0.7},
				{0.0, 0.0, 0.0, 0.0, 1.0},
			},
		}, chain.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		res, err := eng.Run(context.Background(), "SE", 20, 4)
		if err != nil {
			log.Fatal(err)
		}

		p := chain.Printer{Output: os.Stdout, Plain: true}
		_ = p.Print(res)
	}
*/
package chain
