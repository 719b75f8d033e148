package kindle

import (
	"github.com/krdsgo/krds/value"
)

// ToValue converts r into the logical Value model ReaderDataFileSchema
// expects. Absent optional fields are simply omitted from the returned
// StructFields, matching the producer's skip_serializing_if behavior.
func (r ReaderDataFile) ToValue() value.Value {
	var fields value.StructFields

	if r.FontPreferences != nil {
		fields = append(fields, value.Field{Name: "font.prefs", Value: fontPreferencesToValue(*r.FontPreferences)})
	}
	if r.SyncLPR != nil {
		fields = append(fields, value.Field{Name: "sync_lpr", Value: value.Bool(*r.SyncLPR)})
	}
	if r.NISInfoData != nil {
		fields = append(fields, value.Field{Name: "next.in.series.info.data", Value: value.Str(*r.NISInfoData)})
	}
	if r.AnnotationCache != nil {
		m := make(value.Map, len(r.AnnotationCache))
		for i, entry := range r.AnnotationCache {
			m[i] = value.MapEntry{Key: value.Int(entry.Type), Val: intervalTreeOfNoteToValue(entry.Tree)}
		}
		fields = append(fields, value.Field{Name: "annotation.cache.object", Value: m})
	}
	if r.APNXKey != nil {
		fields = append(fields, value.Field{Name: "apnx.key", Value: apnxKeyToValue(*r.APNXKey)})
	}
	if r.LanguageStore != nil {
		fields = append(fields, value.Field{Name: "language.store", Value: languageStoreToValue(*r.LanguageStore)})
	}
	if r.ReaderMetrics != nil {
		m := make(value.Map, len(r.ReaderMetrics))
		for i, entry := range r.ReaderMetrics {
			m[i] = value.MapEntry{Key: value.Str(entry.Key), Val: value.Str(entry.Value)}
		}
		fields = append(fields, value.Field{Name: "ReaderMetrics", Value: m})
	}

	return fields
}

// ReaderDataFileFromValue converts a decoded Value back into a
// ReaderDataFile. v must have been produced by schema.Decode against
// ReaderDataFileSchema.
func ReaderDataFileFromValue(v value.Value) (ReaderDataFile, error) {
	fields, ok := v.(value.StructFields)
	if !ok {
		return ReaderDataFile{}, errBadShape("ReaderDataFile StructFields", v)
	}

	var out ReaderDataFile

	if fv, ok := fields.Get("font.prefs"); ok {
		fp, err := fontPreferencesFromValue(fv)
		if err != nil {
			return ReaderDataFile{}, err
		}
		out.FontPreferences = &fp
	}
	if fv, ok := fields.Get("sync_lpr"); ok {
		b, ok := fv.(value.Bool)
		if !ok {
			return ReaderDataFile{}, errBadShape("sync_lpr Bool", fv)
		}
		v := bool(b)
		out.SyncLPR = &v
	}
	if fv, ok := fields.Get("next.in.series.info.data"); ok {
		s, ok := fv.(value.Str)
		if !ok {
			return ReaderDataFile{}, errBadShape("next.in.series.info.data Str", fv)
		}
		v := string(s)
		out.NISInfoData = &v
	}
	if fv, ok := fields.Get("annotation.cache.object"); ok {
		m, ok := fv.(value.Map)
		if !ok {
			return ReaderDataFile{}, errBadShape("annotation.cache.object Map", fv)
		}
		out.AnnotationCache = make([]AnnotationCacheEntry, len(m))
		for i, entry := range m {
			key, ok := entry.Key.(value.Int)
			if !ok {
				return ReaderDataFile{}, errBadShape("annotation.cache.object key Int", entry.Key)
			}
			tree, err := intervalTreeOfNoteFromValue(entry.Val)
			if err != nil {
				return ReaderDataFile{}, err
			}
			out.AnnotationCache[i] = AnnotationCacheEntry{Type: NoteType(key), Tree: tree}
		}
	}
	if fv, ok := fields.Get("apnx.key"); ok {
		a, err := apnxKeyFromValue(fv)
		if err != nil {
			return ReaderDataFile{}, err
		}
		out.APNXKey = &a
	}
	if fv, ok := fields.Get("language.store"); ok {
		l, err := languageStoreFromValue(fv)
		if err != nil {
			return ReaderDataFile{}, err
		}
		out.LanguageStore = &l
	}
	if fv, ok := fields.Get("ReaderMetrics"); ok {
		m, ok := fv.(value.Map)
		if !ok {
			return ReaderDataFile{}, errBadShape("ReaderMetrics Map", fv)
		}
		out.ReaderMetrics = make([]MetricEntry, len(m))
		for i, entry := range m {
			key, ok := entry.Key.(value.Str)
			if !ok {
				return ReaderDataFile{}, errBadShape("ReaderMetrics key Str", entry.Key)
			}
			val, ok := entry.Val.(value.Str)
			if !ok {
				return ReaderDataFile{}, errBadShape("ReaderMetrics value Str", entry.Val)
			}
			out.ReaderMetrics[i] = MetricEntry{Key: string(key), Value: string(val)}
		}
	}

	return out, nil
}
