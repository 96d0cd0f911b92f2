package model

import "strings"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Category string

const (
	CategoryDate         Category = "date"
	CategoryLocation     Category = "location"
	CategoryDescription  Category = "description"
	CategoryReference    Category = "reference"
	CategoryRelationship Category = "relationship"
)

// Severities and Categories enumerate the valid values in report order.
var (
	Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	Categories = []Category{CategoryDate, CategoryLocation, CategoryDescription, CategoryReference, CategoryRelationship}
)

// ParseSeverity normalizes an oracle-supplied severity string, falling back
// to def when the value is empty or not one of the known levels.
func ParseSeverity(s string, def Severity) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityLow:
		return SeverityLow
	case SeverityMedium:
		return SeverityMedium
	case SeverityHigh:
		return SeverityHigh
	case SeverityCritical:
		return SeverityCritical
	default:
		return def
	}
}

type EntityRef struct {
	ID   string     `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`
}

// Issue is one inconsistency finding. Issues are immutable once created and
// reference entities one-way: nothing links back from an entity to an issue.
type Issue struct {
	ID               string      `json:"id"`
	Severity         Severity    `json:"severity"`
	Category         Category    `json:"category"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	AffectedEntities []EntityRef `json:"affectedEntities"`
	SuggestedFix     string      `json:"suggestedFix,omitempty"`
}
