package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/krdsgo/krds"
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/kindle"
	"github.com/krdsgo/krds/schema"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "krds",
		Short:         "Inspect and round-trip Kindle reader-state (KRDS) files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSerCmd(), newDeCmd(), newFingerprintCmd(), newDiffCmd())

	return root
}

// schemaByName resolves the --schema flag. "" falls back to sniffing the
// suffix of path, per spec §6's file-suffix table.
func schemaByName(name, path string) (schema.Schema, error) {
	switch name {
	case "reader":
		return kindle.ReaderDataFileSchema, nil
	case "timer":
		return kindle.TimerDataFileSchema, nil
	case "":
		if path == "" {
			return nil, fmt.Errorf("--schema is required when reading from stdin")
		}
		s, ok := schemaForPath(path)
		if !ok {
			return nil, fmt.Errorf("cannot infer schema from %q, pass --schema=reader|timer", path)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown schema %q, want reader or timer", name)
	}
}

// schemaForPath delegates to the library's own suffix table (suffix.go)
// so the CLI and package krds never disagree about which extensions map
// to which schema.
func schemaForPath(path string) (schema.Schema, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, false
	}
	return krds.SchemaForSuffix(ext)
}

func compressionByName(name string) (format.CompressionType, error) {
	switch name {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown archive compression %q", name)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
