// Package main provides the CLI entrypoint for def-extractor.
//
// def-extractor loads a set of modules (static metadata manifests or Go
// packages), walks every type reachable from the definition roots and
// writes the classified type graph as JSON for editor tooling.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
