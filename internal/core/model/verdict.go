package model

// Oracle verdict shapes. Each check expects the LLM to answer with strict
// JSON matching one of these; anything else is absorbed as "no verdict".

// ConsistencyVerdict answers whether two dated events can both be true.
type ConsistencyVerdict struct {
	Consistent   bool   `json:"consistent"`
	Severity     string `json:"severity,omitempty"`
	Explanation  string `json:"explanation,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// ContradictionFinding is one internal contradiction within a single
// entity's description.
type ContradictionFinding struct {
	Detail       string `json:"detail"`
	Severity     string `json:"severity,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

type ContradictionFindings struct {
	Contradictions []ContradictionFinding `json:"contradictions"`
}

// ExtractedNames holds proper nouns the oracle pulled out of a description.
type ExtractedNames struct {
	Names []string `json:"names"`
}

// RelationVerdict answers whether a set of relationship types between the
// same entity pair are mutually contradictory.
type RelationVerdict struct {
	Contradictory bool   `json:"contradictory"`
	Severity      string `json:"severity,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
	SuggestedFix  string `json:"suggested_fix,omitempty"`
}
