package krds

import (
	"strings"

	"github.com/krdsgo/krds/kindle"
	"github.com/krdsgo/krds/schema"
)

// SchemaForSuffix returns the top-level schema a file extension decodes
// against (spec §6's file-suffix table), and whether the suffix is
// recognized. The suffix may include or omit its leading dot.
func SchemaForSuffix(suffix string) (schema.Schema, bool) {
	switch strings.ToLower(strings.TrimPrefix(suffix, ".")) {
	case "yjr", "azw3r":
		return kindle.ReaderDataFileSchema, true
	case "yjf", "azw3f":
		return kindle.TimerDataFileSchema, true
	default:
		return nil, false
	}
}
