package main

import (
	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/compress"
	"github.com/spf13/cobra"
)

func newDeCmd() *cobra.Command {
	var (
		file           string
		out            string
		schemaName     string
		archiveCompAlg string
	)

	cmd := &cobra.Command{
		Use:   "de",
		Short: "Strip an archive-compression envelope and validate the KRDS buffer inside it",
		Long: `de reads --file or stdin, reverses the --archive-compression envelope (none
by default, meaning the input is already a plain KRDS buffer), decodes the
result against --schema, and writes the re-encoded canonical KRDS buffer
(MAGIC header included, uncompressed) to --out or stdout.`,
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

			archiveCodec, err := compress.GetCodec(cfg.compression)
			if err != nil {
				return err
			}
			raw, err := archiveCodec.Decompress(in)
			if err != nil {
				return err
			}

			v, err := codec.Decode(raw, cfg.schema)
			if err != nil {
				return err
			}
			canonical, err := codec.Encode(v, cfg.schema)
			if err != nil {
				return err
			}

			return writeOutput(out, canonical)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file path (default stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&schemaName, "schema", "", "reader|timer (inferred from --file's suffix if omitted)")
	cmd.Flags().StringVar(&archiveCompAlg, "archive-compression", "none", "none|zstd|s2|lz4")

	return cmd
}
