// Package schema declares the schema descriptors that drive the codec
// (spec §4.5): a tree of logical-value descriptors, one per record type,
// built once and reused for every encode/decode call. The codec engine
// itself (codec.go) is schema-driven, not reflection-driven, mirroring
// the design note in spec §9: "the codec engine itself knows only about
// schemas and tags."
package schema

// Schema is the closed set of descriptor shapes a record can be built
// from. Like value.Value, it is a marker interface over a fixed set of
// concrete types declared in this file.
type Schema interface {
	isSchema()
}

// Kind identifies which wire primitive a Primitive schema describes.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindLong
	KindShort
	KindFloat
	KindDouble
	KindByte
	KindChar
	KindString
)

// Primitive describes one of the scalar wire tags (spec §3.1/§3.3).
type Primitive struct {
	Kind Kind
}

// Option describes a value that may be present or absent. It is only
// meaningful in two positions: a Struct field (where Required=false
// already carries this meaning — Option itself is not used there) and
// the trailing element of a Tuple, where a one-byte lookahead at decode
// time (peek FIELD_END) distinguishes absence from presence (spec §9,
// "optional fields at non-terminal tuple positions").
type Option struct {
	Inner Schema
}

// SeqFraming selects how a Seq is delimited on the wire (spec §3.3).
type SeqFraming int

const (
	// LengthPrefixed sequences carry an explicit INT element count.
	LengthPrefixed SeqFraming = iota
	// SentinelTerminated sequences have no count; decode keeps reading
	// elements until the next peeked tag is FIELD_END, a framing only
	// valid nested directly inside an already-open named record.
	SentinelTerminated
)

// Seq describes a homogeneous, variable-length sequence.
type Seq struct {
	Elem    Schema
	Framing SeqFraming
}

// MapKeyKind selects a Map's key framing (spec §4.3).
type MapKeyKind int

const (
	// StringKeyedMap frames each entry as a bare STRING-tagged key
	// followed by the value, with no FIELD markers — the reference
	// producer's serialize_map writes only an INT count and then
	// serialize_key/serialize_value pairs with no field framing and no
	// closing marker (ser.rs's SerializeMap impl).
	StringKeyedMap MapKeyKind = iota
	// IntKeyedMap frames each entry as a bare INT-tagged key followed
	// by the value, with no FIELD markers.
	IntKeyedMap
)

// Map describes a length-prefixed key/value sequence.
type Map struct {
	KeyKind MapKeyKind
	Val     Schema
}

// FieldSchema describes one field of a Struct.
type FieldSchema struct {
	Name     string
	Required bool
	Schema   Schema
}

// Struct describes a struct-by-string-keys record (spec §3.3): an
// ordered list of named fields, each either required or optional.
type Struct struct {
	Fields []FieldSchema
}

// IntFieldSchema describes one field of an IntStruct.
type IntFieldSchema struct {
	Key      int32
	Required bool
	Schema   Schema
}

// IntStruct describes a struct-by-integer-keys record (spec §3.3,
// §4.5): field names that are decimal digit strings, encoded as INT
// keys with no FIELD framing.
type IntStruct struct {
	Fields []IntFieldSchema
}

// Tuple describes a fixed-arity, heterogeneous sequence concatenated
// with no length prefix (spec §3.3 "Tuple/fixed sequence"). Only the
// last element may be an Option.
type Tuple struct {
	Elems []Schema
}

// Wrapper describes a named wrapper / newtype record (spec §3.3): a
// single inner value framed by a fixed record name.
type Wrapper struct {
	Name  string
	Inner Schema
}

// VariantKind selects how a Sum variant is framed on the wire (spec
// §4.4).
type VariantKind int

const (
	// VariantNamed frames the payload as a named record: FIELD_BEGIN,
	// the variant's registered name, payload, FIELD_END.
	VariantNamed VariantKind = iota
	// VariantUnitString encodes the variant as a bare STRING equal to
	// the variant's name, with no payload.
	VariantUnitString
	// VariantUnitInt encodes the variant as a bare INT equal to the
	// variant's integer key, with no payload.
	VariantUnitInt
)

// Variant describes one alternative of a Sum schema.
type Variant struct {
	Kind    VariantKind
	Name    string // VariantNamed, VariantUnitString
	IntKey  int32  // VariantUnitInt
	Payload Schema // VariantNamed only
}

// Sum describes a tagged union encoded via one of the three framings in
// spec §4.4.
type Sum struct {
	Variants []Variant
}

// IntervalTree describes the reserved interval-tree wrapper (spec §3.3,
// §4.3): a named record whose fixed name is format.IntervalTreeName and
// whose body is a length-prefixed sequence of Elem.
type IntervalTree struct {
	Elem Schema
}

func (Primitive) isSchema()    {}
func (Option) isSchema()       {}
func (Seq) isSchema()          {}
func (Map) isSchema()          {}
func (Struct) isSchema()       {}
func (IntStruct) isSchema()    {}
func (Tuple) isSchema()        {}
func (Wrapper) isSchema()      {}
func (Sum) isSchema()          {}
func (IntervalTree) isSchema() {}

// Bool, Int, Long, Short, Float, Double, Byte, Char, and String are the
// ready-made Primitive schemas for the nine wire scalars.
var (
	Bool   = Primitive{Kind: KindBool}
	Int    = Primitive{Kind: KindInt}
	Long   = Primitive{Kind: KindLong}
	Short  = Primitive{Kind: KindShort}
	Float  = Primitive{Kind: KindFloat}
	Double = Primitive{Kind: KindDouble}
	Byte   = Primitive{Kind: KindByte}
	Char   = Primitive{Kind: KindChar}
	String = Primitive{Kind: KindString}
)
