package pipeline

import (
	"errors"
	"fmt"
)

// Role tags a column with the transform chain it goes through.
type Role int

const (
	Numeric Role = iota
	Categorical
)

func (r Role) String() string {
	switch r {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

var ErrOverlappingRoles = errors.New("pipeline: column listed as both numeric and categorical")

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Roles        []Role
}

// NewSchema builds a schema from the hardcoded numeric and categorical column lists.
// The lists must be disjoint.
func NewSchema(numeric, categorical []string) (Schema, error) {
	var s Schema
	seen := make(map[string]Role, len(numeric)+len(categorical))
	add := func(names []string, role Role) error {
		for _, n := range names {
			if prev, ok := seen[n]; ok {
				if prev != role {
					return fmt.Errorf("%w: %q", ErrOverlappingRoles, n)
				}
				continue
			}
			seen[n] = role
			s.FeatureNames = append(s.FeatureNames, n)
			s.Roles = append(s.Roles, role)
		}
		return nil
	}
	if err := add(numeric, Numeric); err != nil {
		return Schema{}, err
	}
	if err := add(categorical, Categorical); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Names returns the columns with the given role, in declaration order.
func (s Schema) Names(role Role) []string {
	var out []string
	for i, r := range s.Roles {
		if r == role {
			out = append(out, s.FeatureNames[i])
		}
	}
	return out
}
