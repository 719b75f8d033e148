package kindle

import (
	"fmt"

	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/value"
)

// errBadShape reports a value.Value that does not match the Go type a
// converter expected, something that should only happen if the buffer
// being decoded was produced against a different schema.
func errBadShape(want string, got value.Value) error {
	return fmt.Errorf("kindle: expected %s, got %T", want, got)
}

func fprToValue(f FPR) value.Value {
	return value.Tuple{
		value.Str(f.Position), value.Long(f.Page), value.Long(f.StartPos),
		value.Str(f.StartVersion), value.Str(f.EndVersion),
	}
}

func fprFromValue(v value.Value) (FPR, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 5 {
		return FPR{}, errBadShape("FPR tuple", v)
	}
	return FPR{
		Position:     string(t[0].(value.Str)),
		Page:         int64(t[1].(value.Long)),
		StartPos:     int64(t[2].(value.Long)),
		StartVersion: string(t[3].(value.Str)),
		EndVersion:   string(t[4].(value.Str)),
	}, nil
}

func lprToValue(l LPR) value.Value {
	return value.Tuple{value.Byte(l.Kind), value.Str(l.Position), value.Long(l.Time)}
}

func lprFromValue(v value.Value) (LPR, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 3 {
		return LPR{}, errBadShape("LPR tuple", v)
	}
	return LPR{
		Kind:     int8(t[0].(value.Byte)),
		Position: string(t[1].(value.Str)),
		Time:     int64(t[2].(value.Long)),
	}, nil
}

func wmsToValue(w WhisperstoreMigrationStatus) value.Value {
	return value.Tuple{value.Bool(w.Migrated), value.Bool(w.Unknown)}
}

func wmsFromValue(v value.Value) (WhisperstoreMigrationStatus, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 2 {
		return WhisperstoreMigrationStatus{}, errBadShape("WhisperstoreMigrationStatus tuple", v)
	}
	return WhisperstoreMigrationStatus{
		Migrated: bool(t[0].(value.Bool)),
		Unknown:  bool(t[1].(value.Bool)),
	}, nil
}

func bookInfoStoreToValue(b BookInfoStore) value.Value {
	return value.Tuple{value.Long(b.Estimate), value.Double(b.Percentage)}
}

func bookInfoStoreFromValue(v value.Value) (BookInfoStore, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 2 {
		return BookInfoStore{}, errBadShape("BookInfoStore tuple", v)
	}
	return BookInfoStore{
		Estimate:   int64(t[0].(value.Long)),
		Percentage: float64(t[1].(value.Double)),
	}, nil
}

func timerAveragesToValue(t TimerAverages) value.Value {
	return value.Tuple{value.Long(t.Count), value.Double(t.Mean), value.Double(t.Variance)}
}

func timerAveragesFromValue(v value.Value) (TimerAverages, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 3 {
		return TimerAverages{}, errBadShape("TimerAverages tuple", v)
	}
	return TimerAverages{
		Count:    int64(t[0].(value.Long)),
		Mean:     float64(t[1].(value.Double)),
		Variance: float64(t[2].(value.Double)),
	}, nil
}

func timerAverageCalculatorToValue(c TimerAverageCalculator) value.Value {
	normal := make(value.Seq, len(c.Normal))
	for i, n := range c.Normal {
		normal[i] = value.Record{Name: format.TimerAverageDistributionNormalName, Body: timerAveragesToValue(n)}
	}
	outliers := make(value.Seq, len(c.Outliers))
	for i, o := range c.Outliers {
		outliers[i] = value.Record{Name: format.TimerAverageOutliersName, Body: timerAveragesToValue(o)}
	}
	return value.Tuple{
		value.Int(c.TotalSamples), value.Int(c.ActiveSamples), normal, outliers,
	}
}

func timerAverageCalculatorFromValue(v value.Value) (TimerAverageCalculator, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 4 {
		return TimerAverageCalculator{}, errBadShape("TimerAverageCalculator tuple", v)
	}
	normalSeq, ok := t[2].(value.Seq)
	if !ok {
		return TimerAverageCalculator{}, errBadShape("normal Seq", t[2])
	}
	normal := make([]TimerAverages, len(normalSeq))
	for i, elem := range normalSeq {
		rec, ok := elem.(value.Record)
		if !ok {
			return TimerAverageCalculator{}, errBadShape("TimerAverageDistributionNormal record", elem)
		}
		ta, err := timerAveragesFromValue(rec.Body)
		if err != nil {
			return TimerAverageCalculator{}, err
		}
		normal[i] = ta
	}
	outliersSeq, ok := t[3].(value.Seq)
	if !ok {
		return TimerAverageCalculator{}, errBadShape("outliers Seq", t[3])
	}
	outliers := make([]TimerAverages, len(outliersSeq))
	for i, elem := range outliersSeq {
		rec, ok := elem.(value.Record)
		if !ok {
			return TimerAverageCalculator{}, errBadShape("TimerAverageOutliers record", elem)
		}
		ta, err := timerAveragesFromValue(rec.Body)
		if err != nil {
			return TimerAverageCalculator{}, err
		}
		outliers[i] = ta
	}
	return TimerAverageCalculator{
		TotalSamples:  int32(t[0].(value.Int)),
		ActiveSamples: int32(t[1].(value.Int)),
		Normal:        normal,
		Outliers:      outliers,
	}, nil
}

func timerModelToValue(m TimerModel) value.Value {
	return value.Tuple{
		value.Long(m.TotalTime), value.Long(m.TotalWords), value.Long(m.TotalPages),
		value.Double(m.AverageRate),
		value.Record{Name: format.TimerAverageCalculatorName, Body: timerAverageCalculatorToValue(m.AverageCalculator)},
	}
}

func timerModelFromValue(v value.Value) (TimerModel, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 5 {
		return TimerModel{}, errBadShape("TimerModel tuple", v)
	}
	rec, ok := t[4].(value.Record)
	if !ok {
		return TimerModel{}, errBadShape("timer.average.calculator record", t[4])
	}
	tac, err := timerAverageCalculatorFromValue(rec.Body)
	if err != nil {
		return TimerModel{}, err
	}
	return TimerModel{
		TotalTime:         int64(t[0].(value.Long)),
		TotalWords:        int64(t[1].(value.Long)),
		TotalPages:        int64(t[2].(value.Long)),
		AverageRate:       float64(t[3].(value.Double)),
		AverageCalculator: tac,
	}, nil
}

func pageHistoryRecordToValue(p PageHistoryRecord) value.Value {
	return value.Tuple{value.Str(p.Position), value.Long(p.Time)}
}

func pageHistoryRecordFromValue(v value.Value) (PageHistoryRecord, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 2 {
		return PageHistoryRecord{}, errBadShape("PageHistoryRecord tuple", v)
	}
	return PageHistoryRecord{
		Position: string(t[0].(value.Str)),
		Time:     int64(t[1].(value.Long)),
	}, nil
}

func fontPreferencesToValue(f FontPreferences) value.Value {
	return value.Tuple{
		value.Str(f.FontFace), value.Int(f.FontSize), value.Int(f.FontSizeAlt),
		value.Int(f.LineSpacing), value.Int(f.MarginLeft), value.Int(f.MarginRight),
		value.Int(f.MarginTop), value.Int(f.MarginBottom), value.Int(f.ReadingMode),
		value.Int(f.BoldLevel), value.Str(f.ColorMode), value.Int(f.Orientation),
		value.Str(f.LocaleTag), value.Bool(f.LetterSpacing), value.Str(f.ReadingPreset),
		value.Int(f.PageLayout),
	}
}

func fontPreferencesFromValue(v value.Value) (FontPreferences, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 16 {
		return FontPreferences{}, errBadShape("FontPreferences tuple", v)
	}
	return FontPreferences{
		FontFace:      string(t[0].(value.Str)),
		FontSize:      int32(t[1].(value.Int)),
		FontSizeAlt:   int32(t[2].(value.Int)),
		LineSpacing:   int32(t[3].(value.Int)),
		MarginLeft:    int32(t[4].(value.Int)),
		MarginRight:   int32(t[5].(value.Int)),
		MarginTop:     int32(t[6].(value.Int)),
		MarginBottom:  int32(t[7].(value.Int)),
		ReadingMode:   int32(t[8].(value.Int)),
		BoldLevel:     int32(t[9].(value.Int)),
		ColorMode:     string(t[10].(value.Str)),
		Orientation:   int32(t[11].(value.Int)),
		LocaleTag:     string(t[12].(value.Str)),
		LetterSpacing: bool(t[13].(value.Bool)),
		ReadingPreset: string(t[14].(value.Str)),
		PageLayout:    int32(t[15].(value.Int)),
	}, nil
}

func apnxKeyToValue(a APNXKey) value.Value {
	pageMap := make(value.Seq, len(a.PageMap))
	for i, p := range a.PageMap {
		pageMap[i] = value.Int(p)
	}
	return value.Tuple{
		value.Str(a.Checksum), value.Str(a.Kind), value.Bool(a.ExactPages), pageMap,
		value.Int(a.FirstPage), value.Int(a.PageCount), value.Int(a.CacheVersion), value.Str(a.ContentGUID),
	}
}

func apnxKeyFromValue(v value.Value) (APNXKey, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 8 {
		return APNXKey{}, errBadShape("APNXKey tuple", v)
	}
	seq, ok := t[3].(value.Seq)
	if !ok {
		return APNXKey{}, errBadShape("page map Seq", t[3])
	}
	pageMap := make([]int32, len(seq))
	for i, elem := range seq {
		n, ok := elem.(value.Int)
		if !ok {
			return APNXKey{}, errBadShape("page map element Int", elem)
		}
		pageMap[i] = int32(n)
	}
	return APNXKey{
		Checksum:     string(t[0].(value.Str)),
		Kind:         string(t[1].(value.Str)),
		ExactPages:   bool(t[2].(value.Bool)),
		PageMap:      pageMap,
		FirstPage:    int32(t[4].(value.Int)),
		PageCount:    int32(t[5].(value.Int)),
		CacheVersion: int32(t[6].(value.Int)),
		ContentGUID:  string(t[7].(value.Str)),
	}, nil
}

func languageStoreToValue(l LanguageStore) value.Value {
	return value.Tuple{value.Str(l.Language), value.Int(l.DictID)}
}

func languageStoreFromValue(v value.Value) (LanguageStore, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 2 {
		return LanguageStore{}, errBadShape("LanguageStore tuple", v)
	}
	return LanguageStore{
		Language: string(t[0].(value.Str)),
		DictID:   int32(t[1].(value.Int)),
	}, nil
}
