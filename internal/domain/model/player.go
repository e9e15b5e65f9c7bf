// Package model contains domain models passed between layers.
package model

// Player is a roster member. Fields mirror the JSON snapshot schema.
type Player struct {
	Name   string         `json:"name"`
	Age    int            `json:"age"`
	Skills map[string]int `json:"skills"`
}

// Skill returns the raw value for a skill; absent skills read as 0.
func (p Player) Skill(name string) int {
	return p.Skills[name]
}

// Clone returns a deep copy so records can cross layer boundaries
// without sharing the skill map.
func (p Player) Clone() Player {
	c := p
	c.Skills = make(map[string]int, len(p.Skills))
	for k, v := range p.Skills {
		c.Skills[k] = v
	}
	return c
}

// Roster is an insertion-ordered collection of players. Order matters
// for display only, never for scoring or assignment.
type Roster []Player

// Clone deep-copies the roster.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for i, p := range r {
		out[i] = p.Clone()
	}
	return out
}

// Names returns player names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, p := range r {
		names[i] = p.Name
	}
	return names
}
