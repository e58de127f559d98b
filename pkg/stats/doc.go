// Package stats aggregates state-visit statistics over a batch of trials.
//
// The "dwell time" reported here is total visits divided by visits to a state,
// a global inverse frequency. RunLengths provides the mean consecutive run in a
// state for readers who want a sojourn measure instead.
package stats
