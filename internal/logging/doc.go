// Package logging constructs the slog loggers used across reelpick.
//
// Two formats are supported: a human-oriented console handler that writes to
// stderr so log lines never interleave with interactive prompts on stdout,
// and a JSON handler for machine consumption.
package logging
