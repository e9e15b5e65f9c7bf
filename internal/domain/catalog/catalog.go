// Package catalog defines the fixed role and skill catalogs used for
// fit scoring and lineup assignment.
//
// Catalogs are process-wide constants: built (or loaded from a file)
// once at startup, validated, and never mutated afterwards. Validation
// fails fast so no scoring can run against a broken configuration.
package catalog

import "fmt"

// Threshold is a single raw-skill requirement inside a bonus rule.
type Threshold struct {
	Skill string `koanf:"skill"`
	Min   int    `koanf:"min"`
}

// BonusRule grants Value only when the player meets every threshold.
// Thresholds compare against raw skill values, before the
// diminishing-returns transform.
type BonusRule struct {
	Thresholds []Threshold `koanf:"thresholds"`
	Value      float64     `koanf:"value"`
}

// Role describes one team position and its scoring criteria.
type Role struct {
	Name      string    `koanf:"name"`
	Primary   []string  `koanf:"primary"`
	Secondary []string  `koanf:"secondary"`
	Bonus     BonusRule `koanf:"bonus"`
}

// Catalog holds the validated role and skill sets.
type Catalog struct {
	skills    []string
	skillSet  map[string]struct{}
	roles     []Role
	roleIndex map[string]int
}

// defaultSkills lists every skill identifier a player record may carry.
var defaultSkills = []string{
	"Accuracy", "Bravery", "Composure", "Decision", "Determination",
	"Leadership", "Stamina", "Vision", "Anticipation", "Communication",
	"Concentration", "Dexterity", "Flair", "Memory", "Quickness", "Teamwork",
}

// defaultRoles is the built-in five-role MOBA catalog.
var defaultRoles = []Role{
	{
		Name:      "Top Laner",
		Primary:   []string{"Bravery", "Composure", "Concentration"},
		Secondary: []string{"Communication", "Vision"},
		Bonus: BonusRule{
			Thresholds: []Threshold{{"Bravery", 80}, {"Composure", 80}, {"Concentration", 80}},
			Value:      15,
		},
	},
	{
		Name:      "Jungler",
		Primary:   []string{"Bravery", "Decision", "Vision", "Anticipation", "Communication", "Memory", "Teamwork"},
		Secondary: []string{"Composure", "Concentration", "Leadership", "Flair"},
		Bonus: BonusRule{
			Thresholds: []Threshold{{"Decision", 80}, {"Vision", 80}, {"Communication", 80}},
			Value:      15,
		},
	},
	{
		Name:      "Mid Laner",
		Primary:   []string{"Leadership", "Vision", "Anticipation", "Communication", "Flair"},
		Secondary: []string{"Bravery", "Composure", "Decision", "Concentration", "Teamwork"},
		Bonus: BonusRule{
			Thresholds: []Threshold{{"Leadership", 80}, {"Vision", 80}, {"Flair", 80}},
			Value:      15,
		},
	},
	{
		Name:      "Bot Laner",
		Primary:   []string{"Accuracy", "Dexterity"},
		Secondary: []string{"Composure", "Decision", "Determination", "Leadership", "Vision", "Teamwork", "Flair", "Concentration", "Communication", "Anticipation"},
		Bonus: BonusRule{
			Thresholds: []Threshold{{"Accuracy", 90}, {"Dexterity", 90}},
			Value:      20,
		},
	},
	{
		Name:      "Support",
		Primary:   []string{"Leadership", "Vision", "Memory", "Teamwork", "Communication", "Anticipation"},
		Secondary: []string{"Composure", "Decision", "Concentration"},
		Bonus: BonusRule{
			Thresholds: []Threshold{{"Vision", 80}, {"Communication", 80}, {"Teamwork", 80}},
			Value:      15,
		},
	},
}

// Default returns the built-in catalog. The defaults are known-valid;
// a failure here means the compiled-in tables were edited into an
// inconsistent state, so it panics rather than returning an error.
func Default() *Catalog {
	c, err := New(defaultSkills, defaultRoles)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return c
}

// New builds and validates a catalog from explicit skill and role sets.
func New(skills []string, roles []Role) (*Catalog, error) {
	c := &Catalog{
		skills:    append([]string(nil), skills...),
		skillSet:  make(map[string]struct{}, len(skills)),
		roles:     make([]Role, len(roles)),
		roleIndex: make(map[string]int, len(roles)),
	}
	for _, s := range skills {
		c.skillSet[s] = struct{}{}
	}
	copy(c.roles, roles)
	if err := c.validate(); err != nil {
		return nil, err
	}
	for i, r := range c.roles {
		c.roleIndex[r.Name] = i
	}
	return c, nil
}

// Skills returns the skill identifiers in catalog order.
func (c *Catalog) Skills() []string {
	return append([]string(nil), c.skills...)
}

// KnownSkill reports whether name is a catalog skill.
func (c *Catalog) KnownSkill(name string) bool {
	_, ok := c.skillSet[name]
	return ok
}

// Roles returns the roles in catalog order.
func (c *Catalog) Roles() []Role {
	return append([]Role(nil), c.roles...)
}

// RoleNames returns the role names in catalog order.
func (c *Catalog) RoleNames() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// Role looks up a role by name.
func (c *Catalog) Role(name string) (Role, bool) {
	i, ok := c.roleIndex[name]
	if !ok {
		return Role{}, false
	}
	return c.roles[i], true
}

// RoleCount returns the number of roles, i.e. the full-lineup size.
func (c *Catalog) RoleCount() int {
	return len(c.roles)
}

// validate enforces the startup invariants: at least one role, unique
// role names, every role with at least one primary skill, and every
// skill reference resolving to a known skill.
func (c *Catalog) validate() error {
	if len(c.skills) == 0 {
		return NewKind("catalog.validate", ErrNoSkills)
	}
	seenSkills := make(map[string]struct{}, len(c.skills))
	for _, s := range c.skills {
		if s == "" {
			return NewKind("catalog.validate", ErrEmptyName)
		}
		if _, dup := seenSkills[s]; dup {
			return WrapKind("catalog.validate", ErrDuplicateSkill, fmt.Errorf("skill %q", s))
		}
		seenSkills[s] = struct{}{}
	}
	if len(c.roles) == 0 {
		return NewKind("catalog.validate", ErrNoRoles)
	}
	seenRoles := make(map[string]struct{}, len(c.roles))
	for _, r := range c.roles {
		if r.Name == "" {
			return NewKind("catalog.validate", ErrEmptyName)
		}
		if _, dup := seenRoles[r.Name]; dup {
			return WrapKind("catalog.validate", ErrDuplicateRole, fmt.Errorf("role %q", r.Name))
		}
		seenRoles[r.Name] = struct{}{}
		if len(r.Primary) == 0 {
			return WrapKind("catalog.validate", ErrNoPrimarySkills, fmt.Errorf("role %q", r.Name))
		}
		for _, s := range r.Primary {
			if !c.KnownSkill(s) {
				return WrapKind("catalog.validate", ErrUnknownSkill, fmt.Errorf("role %q primary %q", r.Name, s))
			}
		}
		for _, s := range r.Secondary {
			if !c.KnownSkill(s) {
				return WrapKind("catalog.validate", ErrUnknownSkill, fmt.Errorf("role %q secondary %q", r.Name, s))
			}
		}
		for _, t := range r.Bonus.Thresholds {
			if !c.KnownSkill(t.Skill) {
				return WrapKind("catalog.validate", ErrUnknownSkill, fmt.Errorf("role %q bonus %q", r.Name, t.Skill))
			}
		}
	}
	return nil
}
