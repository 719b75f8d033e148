package wire

import (
	"github.com/krdsgo/krds/errs"
)

// MagicIdentifier is the fixed 8-byte prologue every KRDS file opens with
// (spec §3.1), before the LONG-tagged version value.
var MagicIdentifier = [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x1A, 0xB1, 0x26}

// HeaderSize is the full size of the MAGIC header: the 8-byte identifier
// plus a LONG-tagged value of 1 (1 tag byte + 8 value bytes).
const HeaderSize = len(MagicIdentifier) + 1 + 8

// SupportedVersion is the only header version this codec understands.
const SupportedVersion int64 = 1

// WriteHeader appends the 17-byte MAGIC header: the fixed identifier
// followed by a LONG-tagged value of 1 (spec §3.2). It is the only
// method allowed to emit raw untagged bytes (the identifier itself).
func (w *Writer) WriteHeader() {
	w.buf.MustWrite(MagicIdentifier[:])
	w.WriteLong(SupportedVersion)
}

// ExpectHeader consumes and validates the 17-byte MAGIC header from the
// front of the reader. Offsets in any returned error are relative to the
// reader's own cursor, so callers that start a Reader at the buffer's
// true beginning get absolute offsets for free.
func (r *Reader) ExpectHeader() error {
	start := r.pos
	ident, err := r.readExact(len(MagicIdentifier))
	if err != nil {
		return err
	}
	for i, b := range MagicIdentifier {
		if ident[i] != b {
			return errs.At(errs.ErrBadMagic, start)
		}
	}

	version, err := r.ReadLong()
	if err != nil {
		return err
	}
	if version != SupportedVersion {
		return errs.At(errs.ErrBadMagic, start+len(MagicIdentifier))
	}
	return nil
}
