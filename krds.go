// Package krds provides convenience wrappers over package codec for the
// two concrete Kindle reader-state file families (spec §6): encoding and
// decoding ReaderDataFile (.yjr/.azw3r) and TimerDataFile (.yjf/.azw3f)
// values directly, without the caller having to thread a schema through
// by hand.
package krds

import (
	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/kindle"
)

// EncodeReaderData encodes r as a complete KRDS buffer, MAGIC header
// included, suitable for writing to a .yjr or .azw3r file.
func EncodeReaderData(r kindle.ReaderDataFile) ([]byte, error) {
	return codec.Encode(r.ToValue(), kindle.ReaderDataFileSchema)
}

// DecodeReaderData decodes a complete .yjr/.azw3r buffer.
func DecodeReaderData(data []byte) (kindle.ReaderDataFile, error) {
	v, err := codec.Decode(data, kindle.ReaderDataFileSchema)
	if err != nil {
		return kindle.ReaderDataFile{}, err
	}
	return kindle.ReaderDataFileFromValue(v)
}

// EncodeTimerData encodes t as a complete KRDS buffer, MAGIC header
// included, suitable for writing to a .yjf or .azw3f file.
func EncodeTimerData(t kindle.TimerDataFile) ([]byte, error) {
	return codec.Encode(t.ToValue(), kindle.TimerDataFileSchema)
}

// DecodeTimerData decodes a complete .yjf/.azw3f buffer.
func DecodeTimerData(data []byte) (kindle.TimerDataFile, error) {
	v, err := codec.Decode(data, kindle.TimerDataFileSchema)
	if err != nil {
		return kindle.TimerDataFile{}, err
	}
	return kindle.TimerDataFileFromValue(v)
}
