// Package planner is the tournament schedule planner core.
//
// It is a pure, deterministic decision engine: given a set of already
// committed tournament events and a set of proposed new tournaments
// ("plans"), it returns the subset of plans that may be admitted and
// assigns each admitted plan a staggered start time that minimizes
// temporal collision with other events.
//
// The package performs no I/O, reads no clock, and owns no state across
// calls. Everything that produces candidate plans, persists tournaments,
// or notifies anyone about the outcome lives outside this package.
package planner
