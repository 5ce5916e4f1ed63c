// Package dataset loads the movie dataset from CSV and exposes the in-memory
// record model shared by the catalog, similarity index, and recommendation
// engine.
//
// The loader validates the schema up front: a missing file or a missing
// required column is fatal for the CLI, while individual malformed rows are
// skipped so one bad record cannot take down startup. Records are immutable
// after load.
package dataset
