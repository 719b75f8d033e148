package schema

import (
	"fmt"

	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/value"
	"github.com/krdsgo/krds/wire"
)

// Encode writes v to w according to s. It is the mirror of Decode and the
// only place the engine's container and sum-type rules (spec §4.3, §4.4)
// are applied.
func Encode(w *wire.Writer, v value.Value, s Schema) error {
	switch s := s.(type) {
	case Primitive:
		return encodePrimitive(w, v, s)
	case Option:
		if v == nil {
			return nil
		}
		return Encode(w, v, s.Inner)
	case Seq:
		return encodeSeq(w, v, s)
	case Map:
		return encodeMap(w, v, s)
	case Struct:
		return encodeStruct(w, v, s)
	case IntStruct:
		return encodeIntStruct(w, v, s)
	case Tuple:
		return encodeTuple(w, v, s)
	case Wrapper:
		return encodeWrapper(w, v, s)
	case Sum:
		return encodeSum(w, v, s)
	case IntervalTree:
		return encodeIntervalTree(w, v, s)
	default:
		return &errs.SchemaMismatchError{Reason: "unknown schema kind", Offset: w.Len()}
	}
}

func encodePrimitive(w *wire.Writer, v value.Value, s Primitive) error {
	switch s.Kind {
	case KindBool:
		b, ok := v.(value.Bool)
		if !ok {
			return schemaMismatch(w, "expected Bool")
		}
		w.WriteBool(bool(b))
	case KindInt:
		n, ok := v.(value.Int)
		if !ok {
			return schemaMismatch(w, "expected Int")
		}
		w.WriteInt(int32(n))
	case KindLong:
		n, ok := v.(value.Long)
		if !ok {
			return schemaMismatch(w, "expected Long")
		}
		w.WriteLong(int64(n))
	case KindShort:
		n, ok := v.(value.Short)
		if !ok {
			return schemaMismatch(w, "expected Short")
		}
		w.WriteShort(int16(n))
	case KindFloat:
		n, ok := v.(value.Float)
		if !ok {
			return schemaMismatch(w, "expected Float")
		}
		w.WriteFloat(float32(n))
	case KindDouble:
		n, ok := v.(value.Double)
		if !ok {
			return schemaMismatch(w, "expected Double")
		}
		w.WriteDouble(float64(n))
	case KindByte:
		n, ok := v.(value.Byte)
		if !ok {
			return schemaMismatch(w, "expected Byte")
		}
		w.WriteByte(int8(n))
	case KindChar:
		n, ok := v.(value.Char)
		if !ok {
			return schemaMismatch(w, "expected Char")
		}
		w.WriteChar(byte(n))
	case KindString:
		s, ok := v.(value.Str)
		if !ok {
			return schemaMismatch(w, "expected Str")
		}
		w.WriteString(string(s))
	default:
		return schemaMismatch(w, "unknown primitive kind")
	}
	return nil
}

func encodeSeq(w *wire.Writer, v value.Value, s Seq) error {
	seq, ok := v.(value.Seq)
	if !ok {
		return schemaMismatch(w, "expected Seq")
	}

	switch s.Framing {
	case LengthPrefixed:
		w.WriteInt(int32(len(seq)))
	case SentinelTerminated:
		// No count: the caller's enclosing record supplies FIELD_END.
	}

	for _, elem := range seq {
		if err := Encode(w, elem, s.Elem); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(w *wire.Writer, v value.Value, s Map) error {
	m, ok := v.(value.Map)
	if !ok {
		return schemaMismatch(w, "expected Map")
	}

	w.WriteInt(int32(len(m)))
	for _, entry := range m {
		switch s.KeyKind {
		case StringKeyedMap:
			name, ok := entry.Key.(value.Str)
			if !ok {
				return schemaMismatch(w, "string-keyed map key must be Str")
			}
			w.WriteString(string(name))
			if err := Encode(w, entry.Val, s.Val); err != nil {
				return err
			}
		case IntKeyedMap:
			key, ok := entry.Key.(value.Int)
			if !ok {
				return schemaMismatch(w, "int-keyed map key must be Int")
			}
			w.WriteInt(int32(key))
			if err := Encode(w, entry.Val, s.Val); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeStruct(w *wire.Writer, v value.Value, s Struct) error {
	fields, ok := v.(value.StructFields)
	if !ok {
		return schemaMismatch(w, "expected StructFields")
	}

	count := 0
	for _, fs := range s.Fields {
		if _, present := fields.Get(fs.Name); present {
			count++
		}
	}
	w.WriteInt(int32(count))

	for _, fs := range s.Fields {
		fv, present := fields.Get(fs.Name)
		if !present {
			continue
		}
		w.OpenRecord(fs.Name)
		if err := Encode(w, fv, fs.Schema); err != nil {
			return err
		}
		w.CloseRecord()
	}
	return nil
}

func encodeIntStruct(w *wire.Writer, v value.Value, s IntStruct) error {
	fields, ok := v.(value.IntStructFields)
	if !ok {
		return schemaMismatch(w, "expected IntStructFields")
	}

	count := 0
	for _, fs := range s.Fields {
		if _, present := fields.Get(fs.Key); present {
			count++
		}
	}
	w.WriteInt(int32(count))

	for _, fs := range s.Fields {
		fv, present := fields.Get(fs.Key)
		if !present {
			continue
		}
		w.WriteInt(fs.Key)
		if err := Encode(w, fv, fs.Schema); err != nil {
			return err
		}
	}
	return nil
}

func encodeTuple(w *wire.Writer, v value.Value, s Tuple) error {
	t, ok := v.(value.Tuple)
	if !ok {
		return schemaMismatch(w, "expected Tuple")
	}

	for i, elemSchema := range s.Elems {
		if opt, isOpt := elemSchema.(Option); isOpt && i == len(s.Elems)-1 {
			if i >= len(t) {
				return nil
			}
			if err := Encode(w, t[i], opt.Inner); err != nil {
				return err
			}
			continue
		}
		if i >= len(t) {
			return schemaMismatch(w, "tuple missing required element")
		}
		if err := Encode(w, t[i], elemSchema); err != nil {
			return err
		}
	}
	return nil
}

func encodeWrapper(w *wire.Writer, v value.Value, s Wrapper) error {
	rec, ok := v.(value.Record)
	if !ok {
		return schemaMismatch(w, "expected Record")
	}
	w.OpenRecord(s.Name)
	if err := Encode(w, rec.Body, s.Inner); err != nil {
		return err
	}
	w.CloseRecord()
	return nil
}

func encodeSum(w *wire.Writer, v value.Value, s Sum) error {
	switch v := v.(type) {
	case value.Record:
		for _, variant := range s.Variants {
			if variant.Kind == VariantNamed && variant.Name == v.Name {
				w.OpenRecord(variant.Name)
				if err := Encode(w, v.Body, variant.Payload); err != nil {
					return err
				}
				w.CloseRecord()
				return nil
			}
		}
		return &errs.UnknownVariantError{Name: v.Name, Offset: w.Len()}
	case value.Str:
		for _, variant := range s.Variants {
			if variant.Kind == VariantUnitString && variant.Name == string(v) {
				w.WriteString(string(v))
				return nil
			}
		}
		return &errs.UnknownVariantError{Name: string(v), Offset: w.Len()}
	case value.Int:
		for _, variant := range s.Variants {
			if variant.Kind == VariantUnitInt && variant.IntKey == int32(v) {
				w.WriteInt(int32(v))
				return nil
			}
		}
		return &errs.UnknownVariantError{Name: fmt.Sprintf("%d", int32(v)), Offset: w.Len()}
	default:
		return schemaMismatch(w, "sum value must be Record, Str, or Int")
	}
}

func encodeIntervalTree(w *wire.Writer, v value.Value, s IntervalTree) error {
	rec, ok := v.(value.Record)
	if !ok {
		return schemaMismatch(w, "expected Record")
	}
	body, ok := rec.Body.(value.Seq)
	if !ok {
		return schemaMismatch(w, "interval tree body must be Seq")
	}

	w.OpenRecord(format.IntervalTreeName)
	w.WriteInt(int32(len(body)))
	for _, elem := range body {
		if err := Encode(w, elem, s.Elem); err != nil {
			return err
		}
	}
	w.CloseRecord()
	return nil
}

func schemaMismatch(w *wire.Writer, reason string) error {
	return &errs.SchemaMismatchError{Reason: reason, Offset: w.Len()}
}
