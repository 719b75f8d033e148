package main

import (
	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/compress"
	"github.com/spf13/cobra"
)

func newSerCmd() *cobra.Command {
	var (
		file           string
		out            string
		schemaName     string
		archiveCompAlg string
	)

	cmd := &cobra.Command{
		Use:   "ser",
		Short: "Validate and canonically re-encode a KRDS buffer, optionally archive-compressing it",
		Long: `ser reads a complete, uncompressed KRDS buffer (MAGIC header included) from
--file or stdin, decodes it against --schema, and re-encodes it. This
round-trip both validates the input and canonicalizes its layout. If
--archive-compression is set, the re-encoded buffer is wrapped in that
codec before being written to --out or stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemaByName(schemaName, file)
			if err != nil {
				return err
			}
			ct, err := compressionByName(archiveCompAlg)
			if err != nil {
				return err
			}
			cfg, err := newPipelineConfig(withSchema(s), withCompression(ct))
			if err != nil {
				return err
			}

			in, err := readInput(file)
			if err != nil {
				return err
			}

			v, err := codec.Decode(in, cfg.schema)
			if err != nil {
				return err
			}
			canonical, err := codec.Encode(v, cfg.schema)
			if err != nil {
				return err
			}

			archiveCodec, err := compress.GetCodec(cfg.compression)
			if err != nil {
				return err
			}
			archived, err := archiveCodec.Compress(canonical)
			if err != nil {
				return err
			}

			return writeOutput(out, archived)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file path (default stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&schemaName, "schema", "", "reader|timer (inferred from --file's suffix if omitted)")
	cmd.Flags().StringVar(&archiveCompAlg, "archive-compression", "none", "none|zstd|s2|lz4")

	return cmd
}
