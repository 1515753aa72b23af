// Package suggest ranks type names by similarity to a misspelled name
// fragment.
//
// Names are compared after normalization (case folding, separator removal)
// with a normalized Levenshtein score, both as a whole and token by token,
// so that "Glower" still finds "CompProperties_Glower".
package suggest
