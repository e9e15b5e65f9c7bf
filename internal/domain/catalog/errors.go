package catalog

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNoSkills        = errors.New("catalog has no skills")
	ErrNoRoles         = errors.New("catalog has no roles")
	ErrNoPrimarySkills = errors.New("role has no primary skills")
	ErrUnknownSkill    = errors.New("unknown skill reference")
	ErrDuplicateSkill  = errors.New("duplicate skill")
	ErrDuplicateRole   = errors.New("duplicate role")
	ErrEmptyName       = errors.New("empty name")
	ErrLoadCatalog     = errors.New("load catalog failed")
)

// NewKind tags a sentinel with the failing operation.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags a sentinel with the operation and the underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
