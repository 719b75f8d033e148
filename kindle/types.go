// Package kindle enumerates the concrete record schemas a real Kindle
// reader-state file is built from (spec §6's two top-level families,
// ReaderDataFile and TimerDataFile) and the Go types that carry their
// decoded data. Per spec §1, these schemas are data, not core codec
// logic: this package only declares shapes and converts them to and
// from package value's logical model; package schema and package codec
// do the actual encoding and decoding.
package kindle

// FPR is the "furthest page read" record of a TimerDataFile.
type FPR struct {
	Position     string
	Page         int64
	StartPos     int64
	StartVersion string
	EndVersion   string
}

// LPR is the "last page read" record of a TimerDataFile.
type LPR struct {
	Kind     int8
	Position string
	Time     int64
}

// WhisperstoreMigrationStatus records whether a book's annotations have
// been migrated through Amazon's Whispersync pipeline.
type WhisperstoreMigrationStatus struct {
	Migrated bool
	Unknown  bool
}

// BookInfoStore pairs a book's reading time estimate with a percentage.
type BookInfoStore struct {
	Estimate   int64
	Percentage float64
}

// TimerAverages is a (sample count, mean, variance)-style triple shared
// by a timer-average calculator's normal and outlier samples.
type TimerAverages struct {
	Count    int64
	Mean     float64
	Variance float64
}

// TimerAverageCalculator tracks reading-speed statistics for a book.
type TimerAverageCalculator struct {
	TotalSamples  int32
	ActiveSamples int32
	Normal        []TimerAverages
	Outliers      []TimerAverages
}

// TimerModel is the top-level per-book reading timer record.
type TimerModel struct {
	TotalTime         int64
	TotalWords        int64
	TotalPages        int64
	AverageRate       float64
	AverageCalculator TimerAverageCalculator
}

// PageHistoryRecord is one sample in a book's page-history vector: a
// position string and the timestamp it was visited at.
type PageHistoryRecord struct {
	Position string
	Time     int64
}

// TimerDataFile is the decoded form of a .yjf/.azw3f file: a book's
// reading timer, last/furthest page read, and page-history samples.
// Every field is independently optional, matching the producer's
// skip_serializing_if behavior.
type TimerDataFile struct {
	TimerModel                  *TimerModel
	FPR                         *FPR
	BookInfoStore               *BookInfoStore
	PageHistoryStore            []PageHistoryRecord
	WhisperstoreMigrationStatus *WhisperstoreMigrationStatus
	LPR                         *LPR
}

// FontPreferences is a reader's chosen font, size, margins, and related
// display settings.
type FontPreferences struct {
	FontFace      string
	FontSize      int32
	FontSizeAlt   int32
	LineSpacing   int32
	MarginLeft    int32
	MarginRight   int32
	MarginTop     int32
	MarginBottom  int32
	ReadingMode   int32
	BoldLevel     int32
	ColorMode     string
	Orientation   int32
	LocaleTag     string
	LetterSpacing bool
	ReadingPreset string
	PageLayout    int32
}

// APNXKey carries the APNX page-map identity a reader uses to translate
// a book's internal position format to printed page numbers.
type APNXKey struct {
	Checksum     string
	Kind         string
	ExactPages   bool
	PageMap      []int32
	FirstPage    int32
	PageCount    int32
	CacheVersion int32
	ContentGUID  string
}

// LanguageStore is a book's chosen reading language and an associated
// dictionary identifier.
type LanguageStore struct {
	Language string
	DictID   int32
}

// NoteType is the key a book's annotation cache is organized by; it is
// encoded as a plain INT on the wire (spec §4.3 "Integer-keyed map"),
// never auto-detected from its name.
type NoteType int32

const (
	NoteTypeBookmark    NoteType = 0
	NoteTypeHighlight   NoteType = 1
	NoteTypeTyped       NoteType = 2
	NoteTypeHandwritten NoteType = 10
	NoteTypeSticky      NoteType = 11
)

// AnnotationData is the payload tuple shared by the bookmark, typed-note,
// handwritten-note, and sticky-note annotation variants.
type AnnotationData struct {
	StartPos     string
	EndPos       string
	CreatedTime  int64
	LastModified int64
	Template     string
	// Ref holds the handwritten note's notebook reference, the typed
	// note's text, or an empty string for bookmarks and sticky notes.
	Ref string
}

// HighlightData is the payload tuple for the highlight annotation
// variant, which carries no Ref field.
type HighlightData struct {
	StartPos     string
	EndPos       string
	CreatedTime  int64
	LastModified int64
	Template     string
}

// NoteKind selects which of Note's two payload shapes is populated.
type NoteKind int

const (
	NoteKindBookmark NoteKind = iota
	NoteKindHighlight
	NoteKindTyped
	NoteKindHandwritten
	NoteKindSticky
)

// Note is one annotation: a tagged union over AnnotationData (for every
// kind but highlight) and HighlightData (spec GLOSSARY "Annotation").
type Note struct {
	Kind       NoteKind
	Annotation AnnotationData
	Highlight  HighlightData
}

// IntervalTree is the reserved wrapper (spec GLOSSARY) around a sequence
// of annotations of one NoteType.
type IntervalTree[T any] struct {
	Items []T
}

// AnnotationCacheEntry pairs a NoteType key with its interval tree of
// annotations, preserving decode order for a byte-exact re-encode.
type AnnotationCacheEntry struct {
	Type NoteType
	Tree IntervalTree[Note]
}

// MetricEntry is one key/value pair of a ReaderDataFile's ReaderMetrics,
// kept as an ordered slice for the same byte-exactness reason as
// AnnotationCacheEntry.
type MetricEntry struct {
	Key   string
	Value string
}

// ReaderDataFile is the decoded form of a .yjr/.azw3r file: a book's font
// preferences, annotations, APNX page map, and language settings. Every
// field is independently optional.
type ReaderDataFile struct {
	FontPreferences *FontPreferences
	SyncLPR         *bool
	NISInfoData     *string
	AnnotationCache []AnnotationCacheEntry
	APNXKey         *APNXKey
	LanguageStore   *LanguageStore
	ReaderMetrics   []MetricEntry
}
