// Package wire implements the primitive codec and structural framing of
// the KRDS binary format (spec §3.1, §3.2, §4.1, §4.2): a Writer/Reader
// pair over a byte buffer, plus the MAGIC file header (header.go). It
// knows nothing about logical Value shapes or Schema descriptors; those
// live in package value and package schema, one layer up. This mirrors
// the teacher's section package, which likewise only knows fixed-size
// header layout and leaves the metric-level semantics to its caller.
package wire

import "github.com/krdsgo/krds/endian"

// engine is the byte order used for every multi-byte field on the wire.
// The format is always big-endian (spec §3.1); there is no little-endian
// variant to select between.
var engine = endian.GetBigEndianEngine()
