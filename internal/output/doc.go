// Package output flattens an extraction registry into the editor-facing
// JSON document and writes it to the selected destination.
package output
