package main

import (
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/internal/options"
	"github.com/krdsgo/krds/schema"
)

// pipelineConfig holds the resolved settings for a ser/de invocation.
// Built from cobra flags via functional options, mirroring the teacher's
// blob.With* configuration style (see SPEC_FULL.md's Configuration section)
// even though the underlying codec itself takes no configuration.
type pipelineConfig struct {
	schema      schema.Schema
	compression format.CompressionType
}

type pipelineOption = options.Option[*pipelineConfig]

func withSchema(s schema.Schema) pipelineOption {
	return options.NoError(func(c *pipelineConfig) { c.schema = s })
}

func withCompression(ct format.CompressionType) pipelineOption {
	return options.NoError(func(c *pipelineConfig) { c.compression = ct })
}

func newPipelineConfig(opts ...pipelineOption) (*pipelineConfig, error) {
	cfg := &pipelineConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
