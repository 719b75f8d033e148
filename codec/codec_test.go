package codec_test

import (
	"testing"

	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/schema"
	"github.com/krdsgo/krds/value"
	"github.com/krdsgo/krds/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simpleSchema = schema.Struct{Fields: []schema.FieldSchema{
	{Name: "a", Required: false, Schema: schema.Int},
}}

func TestEncode_WritesHeader(t *testing.T) {
	v := value.StructFields{{Name: "a", Value: value.Int(7)}}
	out, err := codec.Encode(v, simpleSchema)
	require.NoError(t, err)

	assert.Equal(t, wire.MagicIdentifier[:], out[:len(wire.MagicIdentifier)])
	assert.GreaterOrEqual(t, len(out), wire.HeaderSize)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	v := value.StructFields{{Name: "a", Value: value.Int(99)}}
	out, err := codec.Encode(v, simpleSchema)
	require.NoError(t, err)

	got, err := codec.Decode(out, simpleSchema)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestDecode_BadMagic(t *testing.T) {
	_, err := codec.Decode([]byte{0, 0, 0, 0, 0, 0, 0, 0}, simpleSchema)
	assert.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestDecode_TrailingBytes(t *testing.T) {
	v := value.StructFields{{Name: "a", Value: value.Int(1)}}
	out, err := codec.Encode(v, simpleSchema)
	require.NoError(t, err)

	out = append(out, 0xff)
	_, err = codec.Decode(out, simpleSchema)
	assert.ErrorIs(t, err, errs.ErrTrailingBytes)
}

func TestEncode_IsDeterministic(t *testing.T) {
	v := value.StructFields{{Name: "a", Value: value.Int(5)}}
	a, err := codec.Encode(v, simpleSchema)
	require.NoError(t, err)
	b, err := codec.Encode(v, simpleSchema)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
