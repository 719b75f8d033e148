package krds_test

import (
	"testing"

	krds "github.com/krdsgo/krds"
	"github.com/krdsgo/krds/kindle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaForSuffix(t *testing.T) {
	cases := map[string]bool{
		"yjr": true, "azw3r": true, "yjf": true, "azw3f": true,
		".yjr": true, ".azw3f": true,
		"pdf": false, "": false,
	}
	for suffix, want := range cases {
		_, ok := krds.SchemaForSuffix(suffix)
		assert.Equal(t, want, ok, "suffix %q", suffix)
	}
}

func TestSchemaForSuffix_CaseInsensitive(t *testing.T) {
	s, ok := krds.SchemaForSuffix("YJR")
	require.True(t, ok)
	assert.Equal(t, kindle.ReaderDataFileSchema, s)
}

func TestSchemaForSuffix_PicksRightFamily(t *testing.T) {
	s, ok := krds.SchemaForSuffix("yjf")
	require.True(t, ok)
	assert.Equal(t, kindle.TimerDataFileSchema, s)
}

func TestEncodeDecodeReaderData_RoundTrip(t *testing.T) {
	r := kindle.ReaderDataFile{LanguageStore: &kindle.LanguageStore{Language: "en", DictID: 0}}
	buf, err := krds.EncodeReaderData(r)
	require.NoError(t, err)

	got, err := krds.DecodeReaderData(buf)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestEncodeDecodeTimerData_RoundTrip(t *testing.T) {
	tm := kindle.TimerDataFile{FPR: &kindle.FPR{Position: "p", Page: 1, StartPos: 0, StartVersion: "1", EndVersion: "1"}}
	buf, err := krds.EncodeTimerData(tm)
	require.NoError(t, err)

	got, err := krds.DecodeTimerData(buf)
	require.NoError(t, err)
	assert.Equal(t, tm, got)
}
