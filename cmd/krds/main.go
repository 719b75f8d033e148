// Command krds is a thin CLI over package krds: it round-trips a KRDS
// buffer through the codec (ser/de), optionally wraps it in an archive
// compression envelope, and compares or fingerprints decoded files.
//
// None of this is part of the wire format itself (see the root krds
// package and SPEC_FULL.md): it is an external collaborator the way
// original_source/src/cli.rs is, completed here because the original
// left its command bodies stubbed.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
