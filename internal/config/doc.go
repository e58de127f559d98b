// Package config loads simulation parameters from files, the environment and
// loosely typed argument maps. Every source overlays Default.
package config
