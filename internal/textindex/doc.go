// Package textindex ranks movies by textual similarity of their combined
// genre and overview text.
//
// Each movie is reduced to a term-frequency fingerprint (lowercased,
// split on non-alphanumerics, tokens under 3 characters dropped), reweighted
// by inverse document frequency over the loaded dataset, and compared with
// cosine similarity.
package textindex
