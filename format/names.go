package format

// IntervalTreeName is the reserved record name that frames an interval-tree
// sequence (spec §3.3/§4.3). Any other name in that position is an error.
const IntervalTreeName = "saved.avl.interval.tree"

// Annotation variant names, the sum-type tags for the Note enum described
// in the GLOSSARY. Order matches the original source's enum declaration
// order; the schema package preserves it for deterministic encoding.
const (
	VariantBookmark        = "annotation.personal.bookmark"
	VariantHighlight       = "annotation.personal.highlight"
	VariantTypedNote       = "annotation.personal.note"
	VariantHandwrittenNote = "annotation.personal.handwritten_note"
	VariantStickyNote      = "annotation.personal.sticky_note"
)

// TimerAverageCalculatorName is the newtype wrapper name for the
// timer-average calculator record (GLOSSARY: "Timer-average calculator").
const TimerAverageCalculatorName = "timer.average.calculator"

// PageHistoryRecordName is the newtype wrapper name for the page-history
// record (GLOSSARY: "Page-history record").
const PageHistoryRecordName = "page.history.record"

// TimerAverageDistributionNormalName and TimerAverageOutliersName wrap
// the individual samples inside a timer-average calculator's normal and
// outlier vectors. Unlike the records above these carry their producer's
// unrenamed type name on the wire rather than a dotted identifier.
const (
	TimerAverageDistributionNormalName = "TimerAverageDistributionNormal"
	TimerAverageOutliersName           = "TimerAverageOutliers"
)
