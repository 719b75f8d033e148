package schema_test

import (
	"testing"

	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/schema"
	"github.com/krdsgo/krds/value"
	"github.com/krdsgo/krds/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s schema.Schema, v value.Value) value.Value {
	t.Helper()
	w := wire.NewWriter()
	defer w.Release()

	require.NoError(t, schema.Encode(w, v, s))

	r := wire.NewReader(w.Bytes())
	got, err := schema.Decode(r, s)
	require.NoError(t, err)
	assert.True(t, r.AtEnd())
	return got
}

func TestSchema_Primitives_RoundTrip(t *testing.T) {
	assert.Equal(t, value.Bool(true), roundTrip(t, schema.Bool, value.Bool(true)))
	assert.Equal(t, value.Int(42), roundTrip(t, schema.Int, value.Int(42)))
	assert.Equal(t, value.Long(-7), roundTrip(t, schema.Long, value.Long(-7)))
	assert.Equal(t, value.Short(3), roundTrip(t, schema.Short, value.Short(3)))
	assert.Equal(t, value.Float(1.5), roundTrip(t, schema.Float, value.Float(1.5)))
	assert.Equal(t, value.Double(2.5), roundTrip(t, schema.Double, value.Double(2.5)))
	assert.Equal(t, value.Byte(9), roundTrip(t, schema.Byte, value.Byte(9)))
	assert.Equal(t, value.Char('z'), roundTrip(t, schema.Char, value.Char('z')))
	assert.Equal(t, value.Str("hello"), roundTrip(t, schema.String, value.Str("hello")))
}

func TestSchema_Seq_LengthPrefixed(t *testing.T) {
	s := schema.Seq{Elem: schema.Int, Framing: schema.LengthPrefixed}
	v := value.Seq{value.Int(1), value.Int(2), value.Int(3)}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Seq_Empty(t *testing.T) {
	s := schema.Seq{Elem: schema.Int, Framing: schema.LengthPrefixed}
	got := roundTrip(t, s, value.Seq{})
	assert.Equal(t, value.Seq{}, got)
}

func TestSchema_Map_StringKeyed(t *testing.T) {
	s := schema.Map{KeyKind: schema.StringKeyedMap, Val: schema.String}
	v := value.Map{
		{Key: value.Str("a"), Val: value.Str("1")},
		{Key: value.Str("b"), Val: value.Str("2")},
	}
	assert.Equal(t, v, roundTrip(t, s, v))
}

// TestSchema_Map_StringKeyed_WireShape pins the byte layout the reference
// producer emits for a string-keyed map entry: a bare STRING-tagged key
// immediately followed by the value, with no FIELD_BEGIN/FIELD_END framing
// (ser.rs's SerializeMap impl calls serialize_key/serialize_value only).
func TestSchema_Map_StringKeyed_WireShape(t *testing.T) {
	s := schema.Map{KeyKind: schema.StringKeyedMap, Val: schema.String}
	v := value.Map{{Key: value.Str("booklaunchedbefore"), Val: value.Str("true")}}

	w := wire.NewWriter()
	defer w.Release()
	require.NoError(t, schema.Encode(w, v, s))

	want := wire.NewWriter()
	defer want.Release()
	want.WriteInt(1)
	want.WriteString("booklaunchedbefore")
	want.WriteString("true")

	assert.Equal(t, want.Bytes(), w.Bytes())
}

func TestSchema_Map_IntKeyed(t *testing.T) {
	s := schema.Map{KeyKind: schema.IntKeyedMap, Val: schema.String}
	v := value.Map{
		{Key: value.Int(0), Val: value.Str("bookmark")},
		{Key: value.Int(1), Val: value.Str("highlight")},
	}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Struct_OptionalFields(t *testing.T) {
	s := schema.Struct{Fields: []schema.FieldSchema{
		{Name: "a", Required: true, Schema: schema.Int},
		{Name: "b", Required: false, Schema: schema.String},
	}}
	v := value.StructFields{{Name: "a", Value: value.Int(1)}}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Struct_MissingRequiredField(t *testing.T) {
	s := schema.Struct{Fields: []schema.FieldSchema{
		{Name: "a", Required: true, Schema: schema.Int},
	}}
	w := wire.NewWriter()
	defer w.Release()
	w.WriteInt(0) // zero fields present

	r := wire.NewReader(w.Bytes())
	_, err := schema.Decode(r, s)
	require.Error(t, err)
	var missing *errs.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "a", missing.Name)
}

func TestSchema_IntStruct_RoundTrip(t *testing.T) {
	s := schema.IntStruct{Fields: []schema.IntFieldSchema{
		{Key: 0, Required: false, Schema: schema.String},
		{Key: 1, Required: false, Schema: schema.String},
	}}
	v := value.IntStructFields{{Key: 1, Value: value.Str("x")}}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Tuple_FixedArity(t *testing.T) {
	s := schema.Tuple{Elems: []schema.Schema{schema.String, schema.Long}}
	v := value.Tuple{value.Str("pos"), value.Long(5)}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Tuple_TrailingOption_Present(t *testing.T) {
	s := schema.Tuple{Elems: []schema.Schema{
		schema.String, schema.Option{Inner: schema.Long},
	}}
	v := value.Tuple{value.Str("pos"), value.Long(5)}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Tuple_TrailingOption_Absent(t *testing.T) {
	// Nested inside a wrapper record so the trailing Option's absence can
	// be distinguished from presence by peeking FIELD_END.
	s := schema.Wrapper{Name: "w", Inner: schema.Tuple{Elems: []schema.Schema{
		schema.String, schema.Option{Inner: schema.Long},
	}}}
	v := value.Record{Name: "w", Body: value.Tuple{value.Str("pos")}}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Wrapper_RoundTrip(t *testing.T) {
	s := schema.Wrapper{Name: format.TimerAverageCalculatorName, Inner: schema.Int}
	v := value.Record{Name: format.TimerAverageCalculatorName, Body: value.Int(7)}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Wrapper_NameMismatch(t *testing.T) {
	w := wire.NewWriter()
	defer w.Release()
	w.OpenRecord("wrong.name")
	w.WriteInt(1)
	w.CloseRecord()

	r := wire.NewReader(w.Bytes())
	_, err := schema.Decode(r, schema.Wrapper{Name: "expected.name", Inner: schema.Int})
	require.Error(t, err)
	var mismatch *errs.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestSchema_Sum_VariantNamed(t *testing.T) {
	s := schema.Sum{Variants: []schema.Variant{
		{Kind: schema.VariantNamed, Name: format.VariantBookmark, Payload: schema.Int},
		{Kind: schema.VariantNamed, Name: format.VariantHighlight, Payload: schema.Int},
	}}
	v := value.Record{Name: format.VariantHighlight, Body: value.Int(1)}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_Sum_UnitString(t *testing.T) {
	s := schema.Sum{Variants: []schema.Variant{
		{Kind: schema.VariantUnitString, Name: "none"},
	}}
	assert.Equal(t, value.Str("none"), roundTrip(t, s, value.Str("none")))
}

func TestSchema_Sum_UnitInt(t *testing.T) {
	s := schema.Sum{Variants: []schema.Variant{
		{Kind: schema.VariantUnitInt, IntKey: 3},
	}}
	assert.Equal(t, value.Int(3), roundTrip(t, s, value.Int(3)))
}

func TestSchema_Sum_UnknownVariant(t *testing.T) {
	w := wire.NewWriter()
	defer w.Release()
	w.OpenRecord("unregistered")
	w.WriteInt(1)
	w.CloseRecord()

	r := wire.NewReader(w.Bytes())
	s := schema.Sum{Variants: []schema.Variant{
		{Kind: schema.VariantNamed, Name: format.VariantBookmark, Payload: schema.Int},
	}}
	_, err := schema.Decode(r, s)
	var unknown *errs.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unregistered", unknown.Name)
}

func TestSchema_IntervalTree_RoundTrip(t *testing.T) {
	s := schema.IntervalTree{Elem: schema.Int}
	v := value.Record{Name: format.IntervalTreeName, Body: value.Seq{value.Int(1), value.Int(2)}}
	assert.Equal(t, v, roundTrip(t, s, v))
}

func TestSchema_IntervalTree_WrongName(t *testing.T) {
	w := wire.NewWriter()
	defer w.Release()
	w.OpenRecord("not.the.interval.tree")
	w.WriteInt(0)
	w.CloseRecord()

	r := wire.NewReader(w.Bytes())
	_, err := schema.Decode(r, schema.IntervalTree{Elem: schema.Int})
	assert.ErrorIs(t, err, errs.ErrExpectedIntervalTree)
}
