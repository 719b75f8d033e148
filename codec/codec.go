// Package codec is the library surface (spec §6): the header-aware
// encode/decode pair that wraps package schema with the 17-byte MAGIC
// prologue and the "zero trailing bytes" contract.
package codec

import (
	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/schema"
	"github.com/krdsgo/krds/value"
	"github.com/krdsgo/krds/wire"
)

// Encode writes the MAGIC header followed by v encoded against s, and
// returns the accumulated buffer. Must be byte-exact with the reference
// producer for any input the producer can emit (spec §6).
func Encode(v value.Value, s schema.Schema) ([]byte, error) {
	w := wire.NewWriter()
	defer w.Release()

	w.WriteHeader()
	if err := schema.Encode(w, v, s); err != nil {
		return nil, err
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// Decode verifies the MAGIC header, decodes a value against s, and
// requires that decoding consumed every remaining byte (spec §6).
func Decode(data []byte, s schema.Schema) (value.Value, error) {
	r := wire.NewReader(data)

	if err := r.ExpectHeader(); err != nil {
		return nil, err
	}

	v, err := schema.Decode(r, s)
	if err != nil {
		return nil, err
	}

	if !r.AtEnd() {
		return nil, errs.At(errs.ErrTrailingBytes, r.Offset())
	}

	return v, nil
}
