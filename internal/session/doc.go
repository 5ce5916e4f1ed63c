// Package session drives the interactive recommendation flow: collect the
// user's name, genre, mood, and minimum rating, then render picks and offer
// repeat rounds against the same constraints.
//
// All malformed input is handled by re-prompting; the only way out is a "no"
// at the repeat prompt or end of input. The controller is single-threaded and
// blocks on reads, matching the CLI's one-user-at-a-terminal model.
package session
