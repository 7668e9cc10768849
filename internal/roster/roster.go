/**
* Name:        roster.go
* Description: Static senior mentor roster, loaded once at process start
* Workflow:    Load embedded JSON -> validate IDs -> read-only lookups
 */

package roster

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"MBAConnect_SeniorMatching/internal/models"
)

//go:embed seniors.json
var seedData []byte

// Roster is read-only after construction.
type Roster struct {
	seniors []models.SeniorProfile
	byID    map[string]int
}

// Load parses the embedded seed roster.
func Load() (*Roster, error) {
	return Parse(seedData)
}

// Parse builds a roster from a JSON array of senior profiles.
func Parse(data []byte) (*Roster, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var seniors []models.SeniorProfile
	if err := dec.Decode(&seniors); err != nil {
		return nil, fmt.Errorf("roster.Parse(): decode seniors: %w", err)
	}
	return New(seniors)
}

// New copies seniors into a roster. IDs must be non-empty and unique.
func New(seniors []models.SeniorProfile) (*Roster, error) {
	r := &Roster{
		seniors: make([]models.SeniorProfile, 0, len(seniors)),
		byID:    make(map[string]int, len(seniors)),
	}
	for i, s := range seniors {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("roster.New(): senior at index %d has no id", i)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("roster.New(): duplicate senior id %q", s.ID)
		}
		s.ClubsAndCommittees = append([]string(nil), s.ClubsAndCommittees...)
		r.byID[s.ID] = len(r.seniors)
		r.seniors = append(r.seniors, s)
	}
	return r, nil
}

// All returns a copy of every senior in roster order.
func (r *Roster) All() []models.SeniorProfile {
	out := make([]models.SeniorProfile, len(r.seniors))
	for i, s := range r.seniors {
		s.ClubsAndCommittees = append([]string(nil), s.ClubsAndCommittees...)
		out[i] = s
	}
	return out
}

func (r *Roster) Lookup(id string) (models.SeniorProfile, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.SeniorProfile{}, false
	}
	s := r.seniors[i]
	s.ClubsAndCommittees = append([]string(nil), s.ClubsAndCommittees...)
	return s, true
}

func (r *Roster) Len() int {
	return len(r.seniors)
}
