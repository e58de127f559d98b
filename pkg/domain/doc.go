/*
Package domain contains the core data types shared by the chain simulator.

It defines the fundamental entities of a discrete-time Markov chain run, such as
States, Trials and the aggregated statistics. This package is kept pure and free
of external dependencies like I/O or randomness, following Hexagonal Architecture
principles.

# Key Entities

  - State: A labeled stage of the modeled process (e.g. "Aprobada (AP)").
  - Transition: A single non-zero cell of the transition matrix.
  - Trial: One simulated sequence of states over a fixed iteration count.
  - Result: The trials of a run plus the statistics derived from them.
*/
package domain
