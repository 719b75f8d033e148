package kindle_test

import (
	"testing"

	"github.com/krdsgo/krds/codec"
	"github.com/krdsgo/krds/kindle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderDataFile_RoundTrip(t *testing.T) {
	syncLPR := true
	nis := "series-info"

	r := kindle.ReaderDataFile{
		FontPreferences: &kindle.FontPreferences{
			FontFace: "Caecilia", FontSize: 4, FontSizeAlt: 4, LineSpacing: 2,
			MarginLeft: 0, MarginRight: 0, MarginTop: 0, MarginBottom: 0,
			ReadingMode: 0, BoldLevel: 0, ColorMode: "default", Orientation: 0,
			LocaleTag: "en-US", LetterSpacing: false, ReadingPreset: "", PageLayout: 0,
		},
		SyncLPR:     &syncLPR,
		NISInfoData: &nis,
		AnnotationCache: []kindle.AnnotationCacheEntry{
			{
				Type: kindle.NoteTypeHighlight,
				Tree: kindle.IntervalTree[kindle.Note]{Items: []kindle.Note{
					{
						Kind: kindle.NoteKindHighlight,
						Highlight: kindle.HighlightData{
							StartPos: "p1", EndPos: "p2", CreatedTime: 100, LastModified: 200, Template: "",
						},
					},
				}},
			},
			{
				Type: kindle.NoteTypeBookmark,
				Tree: kindle.IntervalTree[kindle.Note]{Items: []kindle.Note{
					{
						Kind: kindle.NoteKindBookmark,
						Annotation: kindle.AnnotationData{
							StartPos: "p3", EndPos: "p3", CreatedTime: 300, LastModified: 300, Template: "", Ref: "",
						},
					},
				}},
			},
		},
		APNXKey: &kindle.APNXKey{
			Checksum: "abc123", Kind: "absolute", ExactPages: true,
			PageMap: []int32{0, 10, 20}, FirstPage: 0, PageCount: 3,
			CacheVersion: 1, ContentGUID: "guid-1",
		},
		LanguageStore: &kindle.LanguageStore{Language: "en", DictID: 0},
		ReaderMetrics: []kindle.MetricEntry{
			{Key: "metric.one", Value: "1"},
			{Key: "metric.two", Value: "2"},
		},
	}

	buf, err := codec.Encode(r.ToValue(), kindle.ReaderDataFileSchema)
	require.NoError(t, err)

	v, err := codec.Decode(buf, kindle.ReaderDataFileSchema)
	require.NoError(t, err)

	got, err := kindle.ReaderDataFileFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestReaderDataFile_AllFieldsAbsent(t *testing.T) {
	r := kindle.ReaderDataFile{}
	buf, err := codec.Encode(r.ToValue(), kindle.ReaderDataFileSchema)
	require.NoError(t, err)

	v, err := codec.Decode(buf, kindle.ReaderDataFileSchema)
	require.NoError(t, err)

	got, err := kindle.ReaderDataFileFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestTimerDataFile_RoundTrip(t *testing.T) {
	migrated := kindle.WhisperstoreMigrationStatus{Migrated: true, Unknown: false}

	tm := kindle.TimerDataFile{
		TimerModel: &kindle.TimerModel{
			TotalTime: 3600, TotalWords: 50000, TotalPages: 320, AverageRate: 1.2,
			AverageCalculator: kindle.TimerAverageCalculator{
				TotalSamples: 10, ActiveSamples: 8,
				Normal:   []kindle.TimerAverages{{Count: 5, Mean: 1.1, Variance: 0.2}},
				Outliers: []kindle.TimerAverages{{Count: 1, Mean: 9.9, Variance: 0.0}},
			},
		},
		FPR: &kindle.FPR{
			Position: "pos-1", Page: 5, StartPos: 0, StartVersion: "1", EndVersion: "2",
		},
		BookInfoStore: &kindle.BookInfoStore{Estimate: 7200, Percentage: 0.42},
		PageHistoryStore: []kindle.PageHistoryRecord{
			{Position: "pos-1", Time: 111},
			{Position: "pos-2", Time: 222},
		},
		WhisperstoreMigrationStatus: &migrated,
		LPR: &kindle.LPR{Kind: 1, Position: "pos-2", Time: 222},
	}

	buf, err := codec.Encode(tm.ToValue(), kindle.TimerDataFileSchema)
	require.NoError(t, err)

	v, err := codec.Decode(buf, kindle.TimerDataFileSchema)
	require.NoError(t, err)

	got, err := kindle.TimerDataFileFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, tm, got)
}

func TestTimerDataFile_AllFieldsAbsent(t *testing.T) {
	tm := kindle.TimerDataFile{}
	buf, err := codec.Encode(tm.ToValue(), kindle.TimerDataFileSchema)
	require.NoError(t, err)

	v, err := codec.Decode(buf, kindle.TimerDataFileSchema)
	require.NoError(t, err)

	got, err := kindle.TimerDataFileFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, tm, got)
}

func TestTimerDataFile_EmptyPageHistory(t *testing.T) {
	tm := kindle.TimerDataFile{PageHistoryStore: []kindle.PageHistoryRecord{}}
	buf, err := codec.Encode(tm.ToValue(), kindle.TimerDataFileSchema)
	require.NoError(t, err)

	v, err := codec.Decode(buf, kindle.TimerDataFileSchema)
	require.NoError(t, err)

	got, err := kindle.TimerDataFileFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, tm, got)
}
