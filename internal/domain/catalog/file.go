package catalog

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// catalogFile mirrors the YAML override schema. Either section may be
// omitted to keep the built-in value.
type catalogFile struct {
	Skills []string `koanf:"skills"`
	Roles  []Role   `koanf:"roles"`
}

// Load reads a catalog override from a YAML file and validates it.
// Omitted sections fall back to the built-in defaults, so a file may
// retune roles without restating the skill list.
func Load(path string) (*Catalog, error) {
	const op = "catalog.load"

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, WrapKind(op, ErrLoadCatalog, err)
	}

	var f catalogFile
	if err := k.UnmarshalWithConf("", &f, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, WrapKind(op, ErrLoadCatalog, err)
	}

	skills := f.Skills
	if len(skills) == 0 {
		skills = defaultSkills
	}
	roles := f.Roles
	if len(roles) == 0 {
		roles = defaultRoles
	}
	return New(skills, roles)
}
