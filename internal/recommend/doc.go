// Package recommend filters and ranks movies against user constraints.
//
// Narrowing by genre and rating is delegated to the catalog store; the
// surviving records are shuffled with an injected randomness source so that
// repeated requests with the same constraints surface different picks, then
// filtered by the mood sign-matching heuristic: a movie passes when no mood
// is given, when its overview polarity shares the mood's sign, or when the
// overview is exactly neutral.
package recommend
