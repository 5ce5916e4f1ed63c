// Package catalog holds the loaded movie dataset in an in-memory SQLite
// database and answers the narrowing queries the recommendation engine needs:
// genre containment, minimum rating, and the distinct-genre catalog.
//
// The database lives at :memory: and never touches disk; it exists so that
// filtering stays declarative and the eligible set for a fixed constraint is
// reproducible (rows come back in insertion order). Shuffling is the engine's
// job, not the store's.
package catalog
