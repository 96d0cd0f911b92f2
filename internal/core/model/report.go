package model

import "time"

// Report aggregates one full check run. The counts are a pure function of the
// issue list; Recount recomputes them so a consumer can verify a report it
// received is internally consistent.
type Report struct {
	Timestamp   time.Time        `json:"timestamp"`
	TotalIssues int              `json:"totalIssues"`
	BySeverity  map[Severity]int `json:"bySeverity"`
	ByCategory  map[Category]int `json:"byCategory"`
	Issues      []Issue          `json:"issues"`
}

func NewReport(issues []Issue) *Report {
	r := &Report{
		Timestamp: time.Now().UTC(),
		Issues:    issues,
	}
	r.Recount()
	return r
}

// Recount rebuilds TotalIssues, BySeverity and ByCategory from Issues.
// All known severities and categories are present in the maps, zero-valued
// when unused, so serialized reports have a stable shape.
func (r *Report) Recount() {
	r.TotalIssues = len(r.Issues)
	r.BySeverity = make(map[Severity]int, len(Severities))
	r.ByCategory = make(map[Category]int, len(Categories))
	for _, s := range Severities {
		r.BySeverity[s] = 0
	}
	for _, c := range Categories {
		r.ByCategory[c] = 0
	}
	for _, issue := range r.Issues {
		r.BySeverity[issue.Severity]++
		r.ByCategory[issue.Category]++
	}
}

// Passed reports the automation signal: false if any issue is high or
// critical severity.
func (r *Report) Passed() bool {
	return r.BySeverity[SeverityHigh] == 0 && r.BySeverity[SeverityCritical] == 0
}
