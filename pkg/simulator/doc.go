/*
Package simulator generates trials of a discrete-time Markov chain.

Each trial starts at the requested state and advances by categorical sampling
over the transition row of the current state:

	sim, _ := simulator.New(m, simulator.WithSeed(42))
	trial, err := sim.Simulate("Solicitud Enviada (SE)", 20)

Concurrency:
  - A Simulator owns a *rand.Rand and is NOT goroutine-safe.
  - The underlying *model.Model is read-only and may be shared.
*/
package simulator
