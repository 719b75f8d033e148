package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data approximating an exported KRDS
// archive with a given compressibility profile.
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// left as zeros
	case "compressible":
		pattern := []byte("font.prefs\x00annotation.cache.object\x00page.history.store")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7) % 256)
		}
	}

	return data
}

func benchmarkCodecCompress(b *testing.B, codec Codec, size int, compressibility string) {
	b.Helper()
	data := generateBenchmarkData(size, compressibility)

	b.SetBytes(int64(size))
	b.ResetTimer()

	for b.Loop() {
		if _, err := codec.Compress(data); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkCodecDecompress(b *testing.B, codec Codec, size int, compressibility string) {
	b.Helper()
	data := generateBenchmarkData(size, compressibility)
	compressed, err := codec.Compress(data)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(size))
	b.ResetTimer()

	for b.Loop() {
		if _, err := codec.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

var benchSizes = []int{1024, 16384, 65536}

func BenchmarkCodecs_Compress(b *testing.B) {
	for name, codec := range getAllCodecs() {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dKB", name, size/1024), func(b *testing.B) {
				benchmarkCodecCompress(b, codec, size, "compressible")
			})
		}
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	for name, codec := range getAllCodecs() {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dKB", name, size/1024), func(b *testing.B) {
				benchmarkCodecDecompress(b, codec, size, "compressible")
			})
		}
	}
}
