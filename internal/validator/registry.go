package validator

import "servicemart/internal/domain"

// Registry maps categories to their category-specific rules.
type Registry struct {
	rules map[domain.Category][]Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[domain.Category][]Rule)}
}

// Register adds a rule for category. Rules run in registration order.
func (r *Registry) Register(category domain.Category, rule Rule) {
	r.rules[category] = append(r.rules[category], rule)
}

// Rules returns the rules registered for category.
func (r *Registry) Rules(category domain.Category) []Rule {
	return r.rules[category]
}

// Get returns the rule with the given key, or nil if not found.
func (r *Registry) Get(key string) Rule {
	for _, rules := range r.rules {
		for _, rule := range rules {
			if rule.RuleKey() == key {
				return rule
			}
		}
	}
	return nil
}
