package wire

import (
	"math"
	"unicode/utf8"

	"github.com/krdsgo/krds/errs"
	"github.com/krdsgo/krds/format"
)

// Reader is the primitive decoder: a cursor over a byte slice that reads
// tagged primitives and structural framing markers, reporting every
// failure with the byte offset it occurred at (spec §7). Like Writer, it
// has no notion of logical Value shapes; package schema drives it.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the reader's current byte offset, for error reporting by
// callers that want to attribute a higher-level failure to a position.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// AtEnd reports whether the reader has consumed the entire buffer.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.data)
}

func (r *Reader) readExact(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errs.At(errs.ErrEof, r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) readByte() (byte, error) {
	if r.AtEnd() {
		return 0, errs.At(errs.ErrEof, r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// PeekTag reads the tag byte at the current position without consuming
// it. Callers use this to decide, before committing, whether the next
// value is a record (FIELD_BEGIN), a sentinel close (FIELD_END), or a
// primitive (spec §4.2's "one-byte lookahead" rule).
func (r *Reader) PeekTag() (format.Tag, error) {
	if r.AtEnd() {
		return 0, errs.At(errs.ErrEof, r.pos)
	}
	return format.Tag(r.data[r.pos]), nil
}

func (r *Reader) readTag() (format.Tag, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	t := format.Tag(b)
	if !t.Valid() {
		return 0, errs.At(errs.ErrUnknownTag, r.pos-1)
	}
	return t, nil
}

func (r *Reader) expectTag(want format.Tag) error {
	start := r.pos
	got, err := r.readTag()
	if err != nil {
		return err
	}
	if got != want {
		return &errs.UnexpectedTagError{Expected: int8(want), Actual: int8(got), Offset: start}
	}
	return nil
}

// ReadBool reads a BOOL-tagged value.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.expectTag(format.TagBool); err != nil {
		return false, err
	}
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadByte reads a BYTE-tagged value.
func (r *Reader) ReadByte() (int8, error) {
	if err := r.expectTag(format.TagByte); err != nil {
		return 0, err
	}
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// ReadShort reads a SHORT-tagged value.
func (r *Reader) ReadShort() (int16, error) {
	if err := r.expectTag(format.TagShort); err != nil {
		return 0, err
	}
	b, err := r.readExact(2)
	if err != nil {
		return 0, err
	}
	return int16(engine.Uint16(b)), nil
}

// ReadInt reads an INT-tagged value.
func (r *Reader) ReadInt() (int32, error) {
	if err := r.expectTag(format.TagInt); err != nil {
		return 0, err
	}
	b, err := r.readExact(4)
	if err != nil {
		return 0, err
	}
	return int32(engine.Uint32(b)), nil
}

// ReadLong reads a LONG-tagged value.
func (r *Reader) ReadLong() (int64, error) {
	if err := r.expectTag(format.TagLong); err != nil {
		return 0, err
	}
	b, err := r.readExact(8)
	if err != nil {
		return 0, err
	}
	return int64(engine.Uint64(b)), nil
}

// ReadFloat reads a FLOAT-tagged value.
func (r *Reader) ReadFloat() (float32, error) {
	if err := r.expectTag(format.TagFloat); err != nil {
		return 0, err
	}
	b, err := r.readExact(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(engine.Uint32(b)), nil
}

// ReadDouble reads a DOUBLE-tagged value.
func (r *Reader) ReadDouble() (float64, error) {
	if err := r.expectTag(format.TagDouble); err != nil {
		return 0, err
	}
	b, err := r.readExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(engine.Uint64(b)), nil
}

// ReadChar reads a CHAR-tagged value: a single raw byte.
func (r *Reader) ReadChar() (byte, error) {
	if err := r.expectTag(format.TagChar); err != nil {
		return 0, err
	}
	return r.readByte()
}

// ReadRawString reads a presence byte and, if present, a big-endian
// uint16 length and that many UTF-8 bytes, with no leading type tag.
// Used for field, record, and variant names.
func (r *Reader) ReadRawString(presence byte, start int) (string, error) {
	switch presence {
	case 1:
		return "", nil
	case 0:
		lenBytes, err := r.readExact(2)
		if err != nil {
			return "", err
		}
		n := int(engine.Uint16(lenBytes))
		body, err := r.readExact(n)
		if err != nil {
			return "", err
		}
		if !utf8.Valid(body) {
			return "", errs.At(errs.ErrInvalidUTF8, start)
		}
		return string(body), nil
	default:
		return "", errs.At(errs.ErrBadPresence, start)
	}
}

func (r *Reader) readRawStringBody() (string, error) {
	start := r.pos
	presence, err := r.readByte()
	if err != nil {
		return "", err
	}
	return r.ReadRawString(presence, start)
}

// ReadString reads a STRING-tagged value.
func (r *Reader) ReadString() (string, error) {
	if err := r.expectTag(format.TagString); err != nil {
		return "", err
	}
	return r.readRawStringBody()
}

// ExpectRecordOpen expects a FIELD_BEGIN tag and returns the record's
// name.
func (r *Reader) ExpectRecordOpen() (string, error) {
	if err := r.expectTag(format.TagFieldBegin); err != nil {
		return "", err
	}
	return r.readRawStringBody()
}

// ExpectRecordClose expects the FIELD_END tag that closes a record opened
// with ExpectRecordOpen.
func (r *Reader) ExpectRecordClose() error {
	start := r.pos
	got, err := r.readTag()
	if err != nil {
		return err
	}
	if got != format.TagFieldEnd {
		return errs.At(errs.ErrUnbalanced, start)
	}
	return nil
}
