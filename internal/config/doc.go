// Package config holds the process options of the extractor: command-line
// values with environment fallbacks, the extraction profile to use and the
// logging destination.
package config
