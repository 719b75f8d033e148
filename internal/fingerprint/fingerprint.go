// Package fingerprint computes a content fingerprint of a decoded,
// canonically re-encoded KRDS record, so the CLI can compare two reader
// export files without a full byte diff (annotations survive a sync, a
// timestamp moved, etc.).
package fingerprint

import "github.com/cespare/xxhash/v2"

// Of computes the xxHash64 of an already-canonicalized byte slice, the
// bytes produced by re-encoding a decoded value against its own schema.
func Of(canonicalBytes []byte) uint64 {
	return xxhash.Sum64(canonicalBytes)
}
