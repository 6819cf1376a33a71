// Package doctor runs the health checks behind `pacup doctor`.
package doctor

// Status is the outcome of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means pacup works but something may surprise the user.
	StatusWarn
	// StatusFail means a sync run would fail.
	StatusFail
)

// Result is one reported line of the doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
