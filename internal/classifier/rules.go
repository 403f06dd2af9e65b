package classifier

import (
	"strings"

	"github.com/evseev/kopilka/internal/model"
)

// Rule maps a lowercase trigger substring to a category. Rules are evaluated
// in slice order; the first trigger found in the text wins.
type Rule struct {
	Trigger  string
	Category model.Category
}

// DefaultRules returns the built-in rule table. Triggers are high-precision
// substrings that override the semantic classifier for cases the embedding
// space is known to get wrong (e.g. "vpn" landing in electronics).
func DefaultRules() []Rule {
	return []Rule{
		{Trigger: "иис", Category: model.CategoryFinance},
		{Trigger: "брокер", Category: model.CategoryFinance},
		{Trigger: "инвестиц", Category: model.CategoryFinance},
		{Trigger: "перевод", Category: model.CategoryFinance},
		{Trigger: "жижа", Category: model.CategoryLeisure},
		{Trigger: "картридж", Category: model.CategoryLeisure},
		{Trigger: "дубай", Category: model.CategoryHousehold},
		{Trigger: "дубаи", Category: model.CategoryHousehold},
		{Trigger: "впн", Category: model.CategoryDigital},
		{Trigger: "vpn", Category: model.CategoryDigital},
		{Trigger: "чизбургер", Category: model.CategoryFastfood},
		{Trigger: "бургер", Category: model.CategoryFastfood},
		{Trigger: "мышь", Category: model.CategoryElectronics},
	}
}

// MatchRules scans the rule table against the raw, unnormalized text. It
// intentionally bypasses Normalize: triggers may be substrings that stop-word
// removal would disturb. Returns false when no trigger matches; never errors.
func MatchRules(rules []Rule, raw string) (model.Category, bool) {
	lowered := strings.ToLower(raw)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Trigger) {
			return rule.Category, true
		}
	}
	return "", false
}
