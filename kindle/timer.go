package kindle

import (
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/value"
)

// ToValue converts t into the logical Value model TimerDataFileSchema
// expects.
func (t TimerDataFile) ToValue() value.Value {
	var fields value.StructFields

	if t.TimerModel != nil {
		fields = append(fields, value.Field{Name: "timer.model", Value: timerModelToValue(*t.TimerModel)})
	}
	if t.FPR != nil {
		fields = append(fields, value.Field{Name: "fpr", Value: fprToValue(*t.FPR)})
	}
	if t.BookInfoStore != nil {
		fields = append(fields, value.Field{Name: "book.info.store", Value: bookInfoStoreToValue(*t.BookInfoStore)})
	}
	if t.PageHistoryStore != nil {
		seq := make(value.Seq, len(t.PageHistoryStore))
		for i, p := range t.PageHistoryStore {
			seq[i] = value.Record{Name: format.PageHistoryRecordName, Body: pageHistoryRecordToValue(p)}
		}
		fields = append(fields, value.Field{Name: "page.history.store", Value: seq})
	}
	if t.WhisperstoreMigrationStatus != nil {
		fields = append(fields, value.Field{Name: "whisperstore.migration.status", Value: wmsToValue(*t.WhisperstoreMigrationStatus)})
	}
	if t.LPR != nil {
		fields = append(fields, value.Field{Name: "lpr", Value: lprToValue(*t.LPR)})
	}

	return fields
}

// TimerDataFileFromValue converts a decoded Value back into a
// TimerDataFile. v must have been produced by schema.Decode against
// TimerDataFileSchema.
func TimerDataFileFromValue(v value.Value) (TimerDataFile, error) {
	fields, ok := v.(value.StructFields)
	if !ok {
		return TimerDataFile{}, errBadShape("TimerDataFile StructFields", v)
	}

	var out TimerDataFile

	if fv, ok := fields.Get("timer.model"); ok {
		m, err := timerModelFromValue(fv)
		if err != nil {
			return TimerDataFile{}, err
		}
		out.TimerModel = &m
	}
	if fv, ok := fields.Get("fpr"); ok {
		f, err := fprFromValue(fv)
		if err != nil {
			return TimerDataFile{}, err
		}
		out.FPR = &f
	}
	if fv, ok := fields.Get("book.info.store"); ok {
		b, err := bookInfoStoreFromValue(fv)
		if err != nil {
			return TimerDataFile{}, err
		}
		out.BookInfoStore = &b
	}
	if fv, ok := fields.Get("page.history.store"); ok {
		seq, ok := fv.(value.Seq)
		if !ok {
			return TimerDataFile{}, errBadShape("page.history.store Seq", fv)
		}
		out.PageHistoryStore = make([]PageHistoryRecord, len(seq))
		for i, elem := range seq {
			rec, ok := elem.(value.Record)
			if !ok {
				return TimerDataFile{}, errBadShape("page.history.store element record", elem)
			}
			p, err := pageHistoryRecordFromValue(rec.Body)
			if err != nil {
				return TimerDataFile{}, err
			}
			out.PageHistoryStore[i] = p
		}
	}
	if fv, ok := fields.Get("whisperstore.migration.status"); ok {
		w, err := wmsFromValue(fv)
		if err != nil {
			return TimerDataFile{}, err
		}
		out.WhisperstoreMigrationStatus = &w
	}
	if fv, ok := fields.Get("lpr"); ok {
		l, err := lprFromValue(fv)
		if err != nil {
			return TimerDataFile{}, err
		}
		out.LPR = &l
	}

	return out, nil
}
