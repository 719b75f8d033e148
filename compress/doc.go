// Package compress provides optional archive compression for exported KRDS
// buffers.
//
// A KRDS buffer produced by package codec is already a complete, byte-exact
// wire stream (MAGIC header plus a fully framed value) — compression here
// is a strippable outer envelope around that buffer, applied by the CLI
// when writing a .yjr/.yjf/.azw3r/.azw3f file to disk or a transport, and
// reversed before the buffer is handed back to codec.Decode. It has no
// bearing on the wire format described by package wire/schema: the codec
// never sees compressed bytes.
//
// # Architecture
//
// The package defines three small interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
// format.CompressionType names four archive-compression choices:
//
//   - None: the KRDS buffer is stored verbatim. Use when the caller wants
//     the exported file to remain byte-identical to what codec.Encode
//     produced, or when the buffer is already small.
//   - Zstd: best compression ratio, moderate speed. Good default for
//     archiving many exported reader-state files.
//   - S2: a faster, less aggressive alternative to Zstd.
//   - LZ4: fastest decompression, useful when files are read back far
//     more often than they are written.
//
// CreateCodec and GetCodec construct a Codec for a format.CompressionType.
// The compressed output carries no header naming its algorithm: the CLI's
// --archive-compression flag supplies the type on both ser and de, and the
// reader must pass the same value that was used to write the file.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use. The pure-Go Zstd
// codec pools its encoders and decoders, and LZ4 pools its block
// compressors, in a sync.Pool rather than allocating fresh state per call;
// LZ4 decompression is stateless and needs no pool.
package compress
