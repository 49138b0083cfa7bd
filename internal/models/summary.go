package models

// Summary is the structured digest returned to callers.
type Summary struct {
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
}

// Normalized returns a copy whose slices are never nil, so both fields
// always encode as JSON arrays.
func (s Summary) Normalized() Summary {
	out := Summary{
		KeyPoints:   s.KeyPoints,
		ActionItems: s.ActionItems,
	}
	if out.KeyPoints == nil {
		out.KeyPoints = []string{}
	}
	if out.ActionItems == nil {
		out.ActionItems = []string{}
	}
	return out
}

// SummaryOutcome is the result of parsing model output. Degraded is set when
// the output could not be parsed and Summary holds the fallback form.
type SummaryOutcome struct {
	Summary  Summary
	Degraded bool
	Raw      string
}

// Result is the success body of a pipeline run.
type Result struct {
	Transcript string  `json:"transcript"`
	Summary    Summary `json:"summary"`
	Degraded   bool    `json:"-"`
}
