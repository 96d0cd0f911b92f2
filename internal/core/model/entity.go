package model

import (
	"fmt"
	"strings"
	"time"
)

type EntityType string

const (
	TypeCharacter EntityType = "character"
	TypeLocation  EntityType = "location"
	TypeEvent     EntityType = "event"
	TypeItem      EntityType = "item"
)

// WorldTime accepts both full RFC3339 timestamps and bare dates
// (the web app exports event dates either way depending on the field).
type WorldTime struct {
	time.Time
}

func (t *WorldTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized date format: %q", s)
}

func (t WorldTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

type Entity struct {
	ID          string     `json:"id"`
	Type        EntityType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Date        *WorldTime `json:"date,omitempty"`     // events only
	Location    string     `json:"location,omitempty"` // events only
}

type Relationship struct {
	SourceID     string `json:"sourceId"`
	TargetID     string `json:"targetId"`
	RelationType string `json:"relationType"`
}

// PairKey returns the unordered endpoint key used to group relationships
// between the same two entities regardless of direction.
func (r Relationship) PairKey() string {
	if r.SourceID < r.TargetID {
		return r.SourceID + "|" + r.TargetID
	}
	return r.TargetID + "|" + r.SourceID
}

// Snapshot is the read-only world state one check run operates on.
// Entities and relationships are immutable for the duration of a run.
type Snapshot struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

func (s *Snapshot) EntityByID(id string) (Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// HasEntityNamed reports whether any entity carries the given name,
// compared case-insensitively.
func (s *Snapshot) HasEntityNamed(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, e := range s.Entities {
		if strings.ToLower(e.Name) == needle {
			return true
		}
	}
	return false
}

// Mentions reports whether the entity's description contains the given name.
// This is deliberately a case-insensitive substring test, not NER: short or
// common names will produce false positive mentions.
func (e Entity) Mentions(name string) bool {
	if e.Description == "" || name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.Description), strings.ToLower(name))
}

func (e Entity) Ref() EntityRef {
	return EntityRef{ID: e.ID, Type: e.Type, Name: e.Name}
}
