package format

// CompressionType identifies the archive-compression codec applied to an
// encoded KRDS buffer before it is written to disk by the CLI. It has no
// bearing on the wire format itself (§3): compression is a strippable
// envelope around an already-complete, byte-exact KRDS byte stream.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
