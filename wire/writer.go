package wire

import (
	"math"

	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/internal/pool"
)

// Writer is the primitive encoder: it appends tagged primitives and
// structural framing markers to a pooled byte buffer. It has no notion of
// logical Value shapes or schema-driven framing choices; package schema
// drives it field by field.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter returns a Writer backed by a buffer from the default pool.
// Call Release when done to return the buffer for reuse.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetBuffer()}
}

// Release returns the Writer's buffer to the pool. The Writer must not be
// used afterward.
func (w *Writer) Release() {
	pool.PutBuffer(w.buf)
	w.buf = nil
}

// Bytes returns the bytes written so far. The slice is only valid until
// the next write or Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) writeTag(t format.Tag) {
	w.buf.MustWriteByte(byte(t))
}

// WriteBool appends a BOOL-tagged value.
func (w *Writer) WriteBool(v bool) {
	w.writeTag(format.TagBool)
	if v {
		w.buf.MustWriteByte(1)
	} else {
		w.buf.MustWriteByte(0)
	}
}

// WriteByte appends a BYTE-tagged value.
func (w *Writer) WriteByte(v int8) {
	w.writeTag(format.TagByte)
	w.buf.MustWriteByte(byte(v))
}

// WriteShort appends a SHORT-tagged value.
func (w *Writer) WriteShort(v int16) {
	w.writeTag(format.TagShort)
	var tmp [2]byte
	engine.PutUint16(tmp[:], uint16(v))
	w.buf.MustWrite(tmp[:])
}

// WriteInt appends an INT-tagged value.
func (w *Writer) WriteInt(v int32) {
	w.writeTag(format.TagInt)
	var tmp [4]byte
	engine.PutUint32(tmp[:], uint32(v))
	w.buf.MustWrite(tmp[:])
}

// WriteLong appends a LONG-tagged value.
func (w *Writer) WriteLong(v int64) {
	w.writeTag(format.TagLong)
	var tmp [8]byte
	engine.PutUint64(tmp[:], uint64(v))
	w.buf.MustWrite(tmp[:])
}

// WriteFloat appends a FLOAT-tagged value.
func (w *Writer) WriteFloat(v float32) {
	w.writeTag(format.TagFloat)
	var tmp [4]byte
	engine.PutUint32(tmp[:], math.Float32bits(v))
	w.buf.MustWrite(tmp[:])
}

// WriteDouble appends a DOUBLE-tagged value.
func (w *Writer) WriteDouble(v float64) {
	w.writeTag(format.TagDouble)
	var tmp [8]byte
	engine.PutUint64(tmp[:], math.Float64bits(v))
	w.buf.MustWrite(tmp[:])
}

// WriteChar appends a CHAR-tagged value: a single byte, per spec §3.2.
func (w *Writer) WriteChar(v byte) {
	w.writeTag(format.TagChar)
	w.buf.MustWriteByte(v)
}

// WriteRawString appends a presence byte, and for a non-empty string a
// big-endian uint16 length and its UTF-8 bytes, with no leading type tag.
// Used for field names, record names, and variant names, which are never
// independently tagged on the wire (spec §3.3).
func (w *Writer) WriteRawString(s string) {
	if s == "" {
		w.buf.MustWriteByte(1)
		return
	}

	w.buf.MustWriteByte(0)
	var tmp [2]byte
	engine.PutUint16(tmp[:], uint16(len(s)))
	w.buf.MustWrite(tmp[:])
	w.buf.MustWrite([]byte(s))
}

// WriteString appends a STRING-tagged value: the STRING tag followed by
// the raw string body (spec §3.2).
func (w *Writer) WriteString(s string) {
	w.writeTag(format.TagString)
	w.WriteRawString(s)
}

// OpenRecord writes a FIELD_BEGIN tag followed by the record's name,
// opening a named field, wrapper, or variant record (spec §3.3).
func (w *Writer) OpenRecord(name string) {
	w.writeTag(format.TagFieldBegin)
	w.WriteRawString(name)
}

// CloseRecord writes the FIELD_END tag that closes a record opened with
// OpenRecord.
func (w *Writer) CloseRecord() {
	w.writeTag(format.TagFieldEnd)
}
