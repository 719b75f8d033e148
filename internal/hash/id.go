// Package hash provides a small, fast string identifier used to tag CLI
// diagnostic output (e.g. labeling which input path a diff report line
// came from) without printing the full path on every line.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
