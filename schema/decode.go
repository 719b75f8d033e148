package schema

import (
	"fmt"

	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/value"
	"github.com/krdsgo/krds/wire"
)

// Decode reads a value from r according to s. It is the engine half of
// the decode state machine in spec §4.5.
func Decode(r *wire.Reader, s Schema) (value.Value, error) {
	switch s := s.(type) {
	case Primitive:
		return decodePrimitive(r, s)
	case Option:
		// Only meaningful when driven by a caller that already knows an
		// element may legitimately be absent (Tuple's trailing slot);
		// reached directly, there is no wire marker for absence.
		return Decode(r, s.Inner)
	case Seq:
		return decodeSeq(r, s)
	case Map:
		return decodeMap(r, s)
	case Struct:
		return decodeStruct(r, s)
	case IntStruct:
		return decodeIntStruct(r, s)
	case Tuple:
		return decodeTuple(r, s)
	case Wrapper:
		return decodeWrapper(r, s)
	case Sum:
		return decodeSum(r, s)
	case IntervalTree:
		return decodeIntervalTree(r, s)
	default:
		return nil, &errs.SchemaMismatchError{Reason: "unknown schema kind", Offset: r.Offset()}
	}
}

func decodePrimitive(r *wire.Reader, s Primitive) (value.Value, error) {
	switch s.Kind {
	case KindBool:
		v, err := r.ReadBool()
		return value.Bool(v), err
	case KindInt:
		v, err := r.ReadInt()
		return value.Int(v), err
	case KindLong:
		v, err := r.ReadLong()
		return value.Long(v), err
	case KindShort:
		v, err := r.ReadShort()
		return value.Short(v), err
	case KindFloat:
		v, err := r.ReadFloat()
		return value.Float(v), err
	case KindDouble:
		v, err := r.ReadDouble()
		return value.Double(v), err
	case KindByte:
		v, err := r.ReadByte()
		return value.Byte(v), err
	case KindChar:
		v, err := r.ReadChar()
		return value.Char(v), err
	case KindString:
		v, err := r.ReadString()
		return value.Str(v), err
	default:
		return nil, &errs.SchemaMismatchError{Reason: "unknown primitive kind", Offset: r.Offset()}
	}
}

func decodeSeq(r *wire.Reader, s Seq) (value.Value, error) {
	switch s.Framing {
	case LengthPrefixed:
		count, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, &errs.SchemaMismatchError{Reason: "negative sequence length", Offset: r.Offset()}
		}
		seq := make(value.Seq, 0, count)
		for i := int32(0); i < count; i++ {
			elem, err := Decode(r, s.Elem)
			if err != nil {
				return nil, err
			}
			seq = append(seq, elem)
		}
		return seq, nil
	case SentinelTerminated:
		var seq value.Seq
		for {
			tag, err := r.PeekTag()
			if err != nil {
				return nil, err
			}
			if tag == format.TagFieldEnd {
				return seq, nil
			}
			elem, err := Decode(r, s.Elem)
			if err != nil {
				return nil, err
			}
			seq = append(seq, elem)
		}
	default:
		return nil, &errs.SchemaMismatchError{Reason: "unknown sequence framing", Offset: r.Offset()}
	}
}

func decodeMap(r *wire.Reader, s Map) (value.Value, error) {
	count, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &errs.SchemaMismatchError{Reason: "negative map length", Offset: r.Offset()}
	}

	m := make(value.Map, 0, count)
	for i := int32(0); i < count; i++ {
		switch s.KeyKind {
		case StringKeyedMap:
			name, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			val, err := Decode(r, s.Val)
			if err != nil {
				return nil, err
			}
			m = append(m, value.MapEntry{Key: value.Str(name), Val: val})
		case IntKeyedMap:
			key, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			val, err := Decode(r, s.Val)
			if err != nil {
				return nil, err
			}
			m = append(m, value.MapEntry{Key: value.Int(key), Val: val})
		default:
			return nil, &errs.SchemaMismatchError{Reason: "unknown map key kind", Offset: r.Offset()}
		}
	}
	return m, nil
}

func decodeStruct(r *wire.Reader, s Struct) (value.Value, error) {
	count, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &errs.SchemaMismatchError{Reason: "negative struct field count", Offset: r.Offset()}
	}

	seen := make(map[string]bool, count)
	fields := make(value.StructFields, 0, count)

	for i := int32(0); i < count; i++ {
		start := r.Offset()
		name, err := r.ExpectRecordOpen()
		if err != nil {
			return nil, err
		}

		fs, ok := findField(s.Fields, name)
		if !ok {
			return nil, &errs.SchemaMismatchError{Reason: fmt.Sprintf("unknown field %q", name), Offset: start}
		}

		val, err := Decode(r, fs.Schema)
		if err != nil {
			return nil, err
		}
		if err := r.ExpectRecordClose(); err != nil {
			return nil, err
		}

		fields = append(fields, value.Field{Name: name, Value: val})
		seen[name] = true
	}

	for _, fs := range s.Fields {
		if fs.Required && !seen[fs.Name] {
			return nil, &errs.MissingFieldError{Name: fs.Name, Offset: r.Offset()}
		}
	}

	return fields, nil
}

func findField(fields []FieldSchema, name string) (FieldSchema, bool) {
	for _, fs := range fields {
		if fs.Name == name {
			return fs, true
		}
	}
	return FieldSchema{}, false
}

func decodeIntStruct(r *wire.Reader, s IntStruct) (value.Value, error) {
	count, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &errs.SchemaMismatchError{Reason: "negative struct field count", Offset: r.Offset()}
	}

	seen := make(map[int32]bool, count)
	fields := make(value.IntStructFields, 0, count)

	for i := int32(0); i < count; i++ {
		start := r.Offset()
		key, err := r.ReadInt()
		if err != nil {
			return nil, err
		}

		fs, ok := findIntField(s.Fields, key)
		if !ok {
			return nil, &errs.SchemaMismatchError{Reason: fmt.Sprintf("unknown integer key %d", key), Offset: start}
		}

		val, err := Decode(r, fs.Schema)
		if err != nil {
			return nil, err
		}

		fields = append(fields, value.IntField{Key: key, Value: val})
		seen[key] = true
	}

	for _, fs := range s.Fields {
		if fs.Required && !seen[fs.Key] {
			return nil, &errs.MissingFieldError{Name: fmt.Sprintf("%d", fs.Key), Offset: r.Offset()}
		}
	}

	return fields, nil
}

func findIntField(fields []IntFieldSchema, key int32) (IntFieldSchema, bool) {
	for _, fs := range fields {
		if fs.Key == key {
			return fs, true
		}
	}
	return IntFieldSchema{}, false
}

func decodeTuple(r *wire.Reader, s Tuple) (value.Value, error) {
	t := make(value.Tuple, 0, len(s.Elems))

	for i, elemSchema := range s.Elems {
		if opt, isOpt := elemSchema.(Option); isOpt && i == len(s.Elems)-1 {
			tag, err := r.PeekTag()
			if err != nil {
				return nil, err
			}
			if tag == format.TagFieldEnd {
				return t, nil
			}
			elem, err := Decode(r, opt.Inner)
			if err != nil {
				return nil, err
			}
			t = append(t, elem)
			continue
		}

		elem, err := Decode(r, elemSchema)
		if err != nil {
			return nil, err
		}
		t = append(t, elem)
	}

	return t, nil
}

func decodeWrapper(r *wire.Reader, s Wrapper) (value.Value, error) {
	start := r.Offset()
	name, err := r.ExpectRecordOpen()
	if err != nil {
		return nil, err
	}
	if name != s.Name {
		return nil, &errs.SchemaMismatchError{Reason: fmt.Sprintf("expected wrapper %q, got %q", s.Name, name), Offset: start}
	}

	body, err := Decode(r, s.Inner)
	if err != nil {
		return nil, err
	}
	if err := r.ExpectRecordClose(); err != nil {
		return nil, err
	}
	return value.Record{Name: name, Body: body}, nil
}

func decodeSum(r *wire.Reader, s Sum) (value.Value, error) {
	tag, err := r.PeekTag()
	if err != nil {
		return nil, err
	}

	switch tag {
	case format.TagFieldBegin:
		start := r.Offset()
		name, err := r.ExpectRecordOpen()
		if err != nil {
			return nil, err
		}
		variant, ok := findVariant(s.Variants, VariantNamed, name)
		if !ok {
			return nil, &errs.UnknownVariantError{Name: name, Offset: start}
		}
		body, err := Decode(r, variant.Payload)
		if err != nil {
			return nil, err
		}
		if err := r.ExpectRecordClose(); err != nil {
			return nil, err
		}
		return value.Record{Name: name, Body: body}, nil
	case format.TagString:
		start := r.Offset()
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, ok := findVariant(s.Variants, VariantUnitString, name); !ok {
			return nil, &errs.UnknownVariantError{Name: name, Offset: start}
		}
		return value.Str(name), nil
	case format.TagInt:
		start := r.Offset()
		key, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		found := false
		for _, variant := range s.Variants {
			if variant.Kind == VariantUnitInt && variant.IntKey == key {
				found = true
				break
			}
		}
		if !found {
			return nil, &errs.UnknownVariantError{Name: fmt.Sprintf("%d", key), Offset: start}
		}
		return value.Int(key), nil
	default:
		return nil, &errs.UnexpectedTagError{Expected: int8(format.TagFieldBegin), Actual: int8(tag), Offset: r.Offset()}
	}
}

func findVariant(variants []Variant, kind VariantKind, name string) (Variant, bool) {
	for _, v := range variants {
		if v.Kind == kind && v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

func decodeIntervalTree(r *wire.Reader, s IntervalTree) (value.Value, error) {
	start := r.Offset()
	name, err := r.ExpectRecordOpen()
	if err != nil {
		return nil, err
	}
	if name != format.IntervalTreeName {
		return nil, errs.At(errs.ErrExpectedIntervalTree, start)
	}

	count, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &errs.SchemaMismatchError{Reason: "negative interval tree length", Offset: r.Offset()}
	}

	body := make(value.Seq, 0, count)
	for i := int32(0); i < count; i++ {
		elem, err := Decode(r, s.Elem)
		if err != nil {
			return nil, err
		}
		body = append(body, elem)
	}

	if err := r.ExpectRecordClose(); err != nil {
		return nil, err
	}

	return value.Record{Name: format.IntervalTreeName, Body: body}, nil
}
