package errors

import (
	"reflect"
	"sort"
)

// Reporter collects the violations of one invocation and hands them back in a stable order,
// sorted by argument name and then by rule kind. Records that compare equal keep the order in
// which they were added.
type Reporter struct {
	ves ValidationErrors
}

func (r *Reporter) Add(ves ...ValidationError) {
	for _, ve := range ves {
		if r.contains(ve) {
			continue
		}
		r.ves = append(r.ves, ve)
	}
}

func (r *Reporter) Len() int {
	return len(r.ves)
}

func (r *Reporter) Empty() bool {
	return len(r.ves) == 0
}

// Report returns the sorted violations, or nil when there are none.
func (r *Reporter) Report() ValidationErrors {
	if len(r.ves) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(r.ves))
	copy(out, r.ves)
	Sort(out)
	return out
}

func (r *Reporter) contains(ve ValidationError) bool {
	for _, e := range r.ves {
		if e.Field == ve.Field && e.Kind == ve.Kind && e.ErrStr == ve.ErrStr && reflect.DeepEqual(e.Value, ve.Value) {
			return true
		}
	}
	return false
}

// Sort orders ves in place by field, then kind.
func Sort(ves ValidationErrors) {
	sort.SliceStable(ves, func(i, j int) bool {
		if ves[i].Field != ves[j].Field {
			return ves[i].Field < ves[j].Field
		}
		return ves[i].Kind < ves[j].Kind
	})
}
