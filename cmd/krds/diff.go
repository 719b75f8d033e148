package main

import (
	"fmt"
	"reflect"

	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/internal/fingerprint"
	"github.com/krdsgo/krds/internal/hash"
	"github.com/krdsgo/krds/schema"
	"github.com/krdsgo/krds/value"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var schemaName string

	cmd := &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Report whether two KRDS files decode to the same value",
		Long: `diff decodes both files against --schema, re-encodes each canonically, and
compares the fingerprints of the canonical bytes, so a top-level field
reordered by another tool still counts as equal. When the two differ, diff
names the top-level fields present in one file but not the other, or whose
decoded value differs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathA, pathB := args[0], args[1]

			s, err := schemaByName(schemaName, pathA)
			if err != nil {
				return err
			}

			valA, canonA, err := decodeFile(pathA, s)
			if err != nil {
				return fmt.Errorf("%s: %w", pathA, err)
			}
			valB, canonB, err := decodeFile(pathB, s)
			if err != nil {
				return fmt.Errorf("%s: %w", pathB, err)
			}

			out := cmd.OutOrStdout()
			fpA, fpB := fingerprint.Of(canonA), fingerprint.Of(canonB)
			labelA := fmt.Sprintf("%s (%016x)", pathA, hash.ID(pathA))
			labelB := fmt.Sprintf("%s (%016x)", pathB, hash.ID(pathB))

			if fpA == fpB {
				fmt.Fprintf(out, "equal: %s == %s\n", labelA, labelB)
				return nil
			}

			fmt.Fprintf(out, "differ: %s != %s\n", labelA, labelB)
			for _, line := range diffFields(valA, valB) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", "", "reader|timer (inferred from the first file's suffix if omitted)")

	return cmd
}

func decodeFile(path string, s schema.Schema) (value.Value, []byte, error) {
	in, err := readInput(path)
	if err != nil {
		return nil, nil, err
	}
	v, err := codec.Decode(in, s)
	if err != nil {
		return nil, nil, err
	}
	canonical, err := codec.Encode(v, s)
	if err != nil {
		return nil, nil, err
	}
	return v, canonical, nil
}

// diffFields compares two top-level struct-by-string-keys values field by
// field, reporting additions, removals, and value changes.
func diffFields(a, b value.Value) []string {
	fa, aok := a.(value.StructFields)
	fb, bok := b.(value.StructFields)
	if !aok || !bok {
		if !reflect.DeepEqual(a, b) {
			return []string{"  top-level values differ"}
		}
		return nil
	}

	var lines []string
	seen := make(map[string]bool, len(fa))
	for _, f := range fa {
		seen[f.Name] = true
		bv, ok := fb.Get(f.Name)
		switch {
		case !ok:
			lines = append(lines, fmt.Sprintf("  - %s: only in first file", f.Name))
		case !reflect.DeepEqual(f.Value, bv):
			lines = append(lines, fmt.Sprintf("  * %s: differs", f.Name))
		}
	}
	for _, f := range fb {
		if !seen[f.Name] {
			lines = append(lines, fmt.Sprintf("  + %s: only in second file", f.Name))
		}
	}
	return lines
}
