package kindle

import (
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/schema"
)

var fprSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.Long, schema.Long, schema.String, schema.String,
}}

var lprSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Byte, schema.String, schema.Long,
}}

var whisperstoreMigrationStatusSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Bool, schema.Bool,
}}

var bookInfoStoreSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Long, schema.Double,
}}

var timerAveragesSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Long, schema.Double, schema.Double,
}}

var timerAverageDistributionNormalSchema = schema.Wrapper{
	Name:  format.TimerAverageDistributionNormalName,
	Inner: timerAveragesSchema,
}

var timerAverageOutliersSchema = schema.Wrapper{
	Name:  format.TimerAverageOutliersName,
	Inner: timerAveragesSchema,
}

var timerAverageCalculatorSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Int, schema.Int,
	schema.Seq{Elem: timerAverageDistributionNormalSchema, Framing: schema.LengthPrefixed},
	schema.Seq{Elem: timerAverageOutliersSchema, Framing: schema.LengthPrefixed},
}}

var tacWrapperSchema = schema.Wrapper{
	Name:  format.TimerAverageCalculatorName,
	Inner: timerAverageCalculatorSchema,
}

var timerModelSchema = schema.Tuple{Elems: []schema.Schema{
	schema.Long, schema.Long, schema.Long, schema.Double, tacWrapperSchema,
}}

var pageHistoryRecordSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.Long,
}}

var phrWrapperSchema = schema.Wrapper{
	Name:  format.PageHistoryRecordName,
	Inner: pageHistoryRecordSchema,
}

// TimerDataFileSchema describes a .yjf/.azw3f file (spec §6).
var TimerDataFileSchema = schema.Struct{Fields: []schema.FieldSchema{
	{Name: "timer.model", Required: false, Schema: timerModelSchema},
	{Name: "fpr", Required: false, Schema: fprSchema},
	{Name: "book.info.store", Required: false, Schema: bookInfoStoreSchema},
	{Name: "page.history.store", Required: false, Schema: schema.Seq{Elem: phrWrapperSchema, Framing: schema.LengthPrefixed}},
	{Name: "whisperstore.migration.status", Required: false, Schema: whisperstoreMigrationStatusSchema},
	{Name: "lpr", Required: false, Schema: lprSchema},
}}

var fontPreferencesSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.Int, schema.Int, schema.Int, schema.Int, schema.Int,
	schema.Int, schema.Int, schema.Int, schema.Int, schema.String, schema.Int, schema.String,
	schema.Bool, schema.String, schema.Int,
}}

var apnxKeySchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.String, schema.Bool,
	schema.Seq{Elem: schema.Int, Framing: schema.LengthPrefixed},
	schema.Int, schema.Int, schema.Int, schema.String,
}}

var languageStoreSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.Int,
}}

var annotationDataSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.String, schema.Long, schema.Long, schema.String, schema.String,
}}

var highlightDataSchema = schema.Tuple{Elems: []schema.Schema{
	schema.String, schema.String, schema.Long, schema.Long, schema.String,
}}

var noteSchema = schema.Sum{Variants: []schema.Variant{
	{Kind: schema.VariantNamed, Name: format.VariantBookmark, Payload: annotationDataSchema},
	{Kind: schema.VariantNamed, Name: format.VariantHighlight, Payload: highlightDataSchema},
	{Kind: schema.VariantNamed, Name: format.VariantTypedNote, Payload: annotationDataSchema},
	{Kind: schema.VariantNamed, Name: format.VariantHandwrittenNote, Payload: annotationDataSchema},
	{Kind: schema.VariantNamed, Name: format.VariantStickyNote, Payload: annotationDataSchema},
}}

var intervalTreeOfNoteSchema = schema.IntervalTree{Elem: noteSchema}

var annotationCacheSchema = schema.Map{KeyKind: schema.IntKeyedMap, Val: intervalTreeOfNoteSchema}

var readerMetricsSchema = schema.Map{KeyKind: schema.StringKeyedMap, Val: schema.String}

// ReaderDataFileSchema describes a .yjr/.azw3r file (spec §6).
var ReaderDataFileSchema = schema.Struct{Fields: []schema.FieldSchema{
	{Name: "font.prefs", Required: false, Schema: fontPreferencesSchema},
	{Name: "sync_lpr", Required: false, Schema: schema.Bool},
	{Name: "next.in.series.info.data", Required: false, Schema: schema.String},
	{Name: "annotation.cache.object", Required: false, Schema: annotationCacheSchema},
	{Name: "apnx.key", Required: false, Schema: apnxKeySchema},
	{Name: "language.store", Required: false, Schema: languageStoreSchema},
	{Name: "ReaderMetrics", Required: false, Schema: readerMetricsSchema},
}}
