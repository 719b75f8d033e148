package kindle

import (
	"github.com/krdsgo/krds/format"
	"github.com/krdsgo/krds/value"
)

func annotationDataToValue(a AnnotationData) value.Value {
	return value.Tuple{
		value.Str(a.StartPos), value.Str(a.EndPos), value.Long(a.CreatedTime),
		value.Long(a.LastModified), value.Str(a.Template), value.Str(a.Ref),
	}
}

func annotationDataFromValue(v value.Value) (AnnotationData, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 6 {
		return AnnotationData{}, errBadShape("AnnotationData tuple", v)
	}
	return AnnotationData{
		StartPos:     string(t[0].(value.Str)),
		EndPos:       string(t[1].(value.Str)),
		CreatedTime:  int64(t[2].(value.Long)),
		LastModified: int64(t[3].(value.Long)),
		Template:     string(t[4].(value.Str)),
		Ref:          string(t[5].(value.Str)),
	}, nil
}

func highlightDataToValue(h HighlightData) value.Value {
	return value.Tuple{
		value.Str(h.StartPos), value.Str(h.EndPos), value.Long(h.CreatedTime),
		value.Long(h.LastModified), value.Str(h.Template),
	}
}

func highlightDataFromValue(v value.Value) (HighlightData, error) {
	t, ok := v.(value.Tuple)
	if !ok || len(t) != 5 {
		return HighlightData{}, errBadShape("HighlightData tuple", v)
	}
	return HighlightData{
		StartPos:     string(t[0].(value.Str)),
		EndPos:       string(t[1].(value.Str)),
		CreatedTime:  int64(t[2].(value.Long)),
		LastModified: int64(t[3].(value.Long)),
		Template:     string(t[4].(value.Str)),
	}, nil
}

func noteVariantName(kind NoteKind) string {
	switch kind {
	case NoteKindBookmark:
		return format.VariantBookmark
	case NoteKindHighlight:
		return format.VariantHighlight
	case NoteKindTyped:
		return format.VariantTypedNote
	case NoteKindHandwritten:
		return format.VariantHandwrittenNote
	case NoteKindSticky:
		return format.VariantStickyNote
	default:
		return ""
	}
}

func noteKindFromName(name string) (NoteKind, bool) {
	switch name {
	case format.VariantBookmark:
		return NoteKindBookmark, true
	case format.VariantHighlight:
		return NoteKindHighlight, true
	case format.VariantTypedNote:
		return NoteKindTyped, true
	case format.VariantHandwrittenNote:
		return NoteKindHandwritten, true
	case format.VariantStickyNote:
		return NoteKindSticky, true
	default:
		return 0, false
	}
}

func noteToValue(n Note) value.Value {
	name := noteVariantName(n.Kind)
	if n.Kind == NoteKindHighlight {
		return value.Record{Name: name, Body: highlightDataToValue(n.Highlight)}
	}
	return value.Record{Name: name, Body: annotationDataToValue(n.Annotation)}
}

func noteFromValue(v value.Value) (Note, error) {
	rec, ok := v.(value.Record)
	if !ok {
		return Note{}, errBadShape("Note record", v)
	}
	kind, ok := noteKindFromName(rec.Name)
	if !ok {
		return Note{}, errBadShape("known note variant name", v)
	}
	if kind == NoteKindHighlight {
		h, err := highlightDataFromValue(rec.Body)
		if err != nil {
			return Note{}, err
		}
		return Note{Kind: kind, Highlight: h}, nil
	}
	a, err := annotationDataFromValue(rec.Body)
	if err != nil {
		return Note{}, err
	}
	return Note{Kind: kind, Annotation: a}, nil
}

func intervalTreeOfNoteToValue(t IntervalTree[Note]) value.Value {
	items := make(value.Seq, len(t.Items))
	for i, n := range t.Items {
		items[i] = noteToValue(n)
	}
	return value.Record{Name: format.IntervalTreeName, Body: items}
}

func intervalTreeOfNoteFromValue(v value.Value) (IntervalTree[Note], error) {
	rec, ok := v.(value.Record)
	if !ok || rec.Name != format.IntervalTreeName {
		return IntervalTree[Note]{}, errBadShape("interval tree record", v)
	}
	seq, ok := rec.Body.(value.Seq)
	if !ok {
		return IntervalTree[Note]{}, errBadShape("interval tree body Seq", rec.Body)
	}
	items := make([]Note, len(seq))
	for i, elem := range seq {
		n, err := noteFromValue(elem)
		if err != nil {
			return IntervalTree[Note]{}, err
		}
		items[i] = n
	}
	return IntervalTree[Note]{Items: items}, nil
}
