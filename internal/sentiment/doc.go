// Package sentiment scores free text with a VADER lexicon and normalizes the
// result to a polarity in [-1, 1]. Scores are deterministic for identical
// input; empty text is neutral.
package sentiment
