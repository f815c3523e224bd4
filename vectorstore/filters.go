package vectorstore

import "time"

// Filter is a boolean combination of payload-field conditions used to
// restrict search and delete scope. It is evaluated by the external
// service, never locally.
//
// Clauses combine as: all Must conditions AND none of the MustNot
// conditions AND (at least one Should condition, or at least MinShould of
// them when MinShould > 0).
//
// Example:
//
//	f := &vectorstore.Filter{
//	    Must: []vectorstore.Condition{
//	        vectorstore.NumericRangeCondition{Field: "read_time", Range: vectorstore.NumericRange{Lt: vectorstore.Float(10)}},
//	    },
//	    Should: []vectorstore.Condition{
//	        vectorstore.MatchCondition{Field: "author", Value: "Jane Smith"},
//	        vectorstore.MatchCondition{Field: "author", Value: "John Doe"},
//	    },
//	    MinShould: 1,
//	}
type Filter struct {
	// Must conditions all have to match (AND).
	Must []Condition

	// Should conditions are OR-combined; see MinShould.
	Should []Condition

	// MustNot conditions must all fail to match (NOT).
	MustNot []Condition

	// MinShould is the minimum number of Should conditions that must
	// match. Zero means the default OR semantics (at least one, and only
	// if no Must clause is present).
	MinShould int
}

// Condition is a single payload-field predicate. Implementations are the
// concrete condition types in this package; adapters convert them to the
// backing service's wire format.
type Condition interface {
	// Key returns the payload field the condition applies to.
	Key() string
}

// MatchCondition matches a field against an exact value. Supported value
// types are string, bool, int and int64; anything else is rejected by the
// adapter with a *ValidationError.
type MatchCondition struct {
	Field string
	Value any
}

func (c MatchCondition) Key() string { return c.Field }

// MatchAnyCondition matches if the field equals any of the given values
// (IN). Values must be homogeneous strings or integers.
type MatchAnyCondition struct {
	Field  string
	Values []any
}

func (c MatchAnyCondition) Key() string { return c.Field }

// MatchExceptCondition matches if the field equals none of the given
// values (NOT IN). Values must be homogeneous strings or integers.
type MatchExceptCondition struct {
	Field  string
	Values []any
}

func (c MatchExceptCondition) Key() string { return c.Field }

// NumericRange bounds a numeric payload field. Nil bounds are open.
type NumericRange struct {
	Gt  *float64
	Gte *float64
	Lt  *float64
	Lte *float64
}

// NumericRangeCondition matches if the field falls inside Range.
type NumericRangeCondition struct {
	Field string
	Range NumericRange
}

func (c NumericRangeCondition) Key() string { return c.Field }

// TimeRange bounds a datetime payload field. Nil bounds are open.
type TimeRange struct {
	Gt  *time.Time
	Gte *time.Time
	Lt  *time.Time
	Lte *time.Time
}

// TimeRangeCondition matches if the field falls inside Range.
type TimeRangeCondition struct {
	Field string
	Range TimeRange
}

func (c TimeRangeCondition) Key() string { return c.Field }

// IsNullCondition matches points whose field is explicitly null.
type IsNullCondition struct {
	Field string
}

func (c IsNullCondition) Key() string { return c.Field }

// IsEmptyCondition matches points missing the field or holding an empty
// value for it.
type IsEmptyCondition struct {
	Field string
}

func (c IsEmptyCondition) Key() string { return c.Field }

// IsEmpty reports whether the filter contains no conditions at all.
// Adapters treat an empty filter as "match everything" and omit it from
// requests.
func (f *Filter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.Must) == 0 && len(f.Should) == 0 && len(f.MustNot) == 0
}

// Float returns a pointer to v, for building range bounds inline.
func Float(v float64) *float64 { return &v }

// Time returns a pointer to t, for building time-range bounds inline.
func Time(t time.Time) *time.Time { return &t }
