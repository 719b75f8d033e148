package main

import (
	"fmt"

	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/internal/fingerprint"
	"github.com/spf13/cobra"
)

func newFingerprintCmd() *cobra.Command {
	var (
		file       string
		schemaName string
	)

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a content fingerprint of a decoded KRDS file",
		Long: `fingerprint decodes --file (or stdin) against --schema, re-encodes it
canonically, and prints the xxHash64 of the canonical bytes. Two files with
the same fingerprint carry the same reader state even if their original
top-level field order differed. Input with bytes after the top-level value
is rejected, not fingerprinted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemaByName(schemaName, file)
			if err != nil {
				return err
			}

			in, err := readInput(file)
			if err != nil {
				return err
			}

			v, err := codec.Decode(in, s)
			if err != nil {
				return err
			}
			canonical, err := codec.Encode(v, s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", fingerprint.Of(canonical))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file path (default stdin)")
	cmd.Flags().StringVar(&schemaName, "schema", "", "reader|timer (inferred from --file's suffix if omitted)")

	return cmd
}
