package fooddata

import (
	_ "embed"
	"fmt"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed nutrient_rules.yaml
var defaultRulesYAML []byte

type rulesFile struct {
	Rules []struct {
		Field    string `yaml:"field"`
		Contains string `yaml:"contains"`
	} `yaml:"rules"`
}

// DefaultRules returns the embedded nutrient rule list.
func DefaultRules() []domain.NutrientRule {
	rules, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded nutrient rules are invalid: %v", err))
	}
	return rules
}

// ParseRules decodes an ordered nutrient rule list.
func ParseRules(data []byte) ([]domain.NutrientRule, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode nutrient rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("no nutrient rules defined")
	}

	rules := make([]domain.NutrientRule, 0, len(f.Rules))
	for i, r := range f.Rules {
		field, ok := domain.ParseNutrientField(r.Field)
		if !ok {
			return nil, fmt.Errorf("rule %d: unknown nutrient field %q", i, r.Field)
		}
		if r.Contains == "" {
			return nil, fmt.Errorf("rule %d: contains must not be empty", i)
		}
		rules = append(rules, domain.NutrientRule{Field: field, Contains: r.Contains})
	}
	return rules, nil
}
