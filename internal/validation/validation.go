package validation

import (
	"context"
	"fmt"
)

// Errors maps a field name to the rules it violated. A nil/empty Errors means
// the body passed validation.
type Errors map[string][]string

// Rule is a declarative constraint on a single body field.
type Rule struct {
	Presence  bool     // field must be present and non-blank
	Inclusion []string // when non-nil, the value must be one of these
}

// RuleSet maps field names to their rules.
type RuleSet map[string]Rule

// Provider builds a rule set at request time. Implementations may consult
// current database state to derive allow-lists.
type Provider interface {
	Constraints(ctx context.Context) (RuleSet, error)
}

// Validate checks a parsed request body against a rule set and returns the
// per-field violations. Only body fields are checked, never path or query
// parameters.
func Validate(body map[string]any, rules RuleSet) Errors {
	errs := Errors{}

	for field, rule := range rules {
		raw, ok := body[field]
		value, isString := raw.(string)

		if rule.Presence && (!ok || (isString && value == "") || raw == nil) {
			errs[field] = append(errs[field], fmt.Sprintf("%s can't be blank", field))
			continue
		}
		if !ok {
			continue
		}

		if rule.Inclusion != nil {
			if !isString || !contains(rule.Inclusion, value) {
				errs[field] = append(errs[field], fmt.Sprintf("%s is not included in the list", field))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
