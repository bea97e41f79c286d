package comments

import (
	"strings"

	"air-relatorios/internal/domain"
)

// Pick returns the first configured category the classifier marked true, or
// domain.Unclassified. Category names match case-insensitively.
func Pick(categories []domain.CommentCategory, verdicts map[string]bool) string {
	if len(verdicts) == 0 {
		return domain.Unclassified
	}
	folded := make(map[string]bool, len(verdicts))
	for name, ok := range verdicts {
		key := strings.ToLower(strings.TrimSpace(name))
		folded[key] = folded[key] || ok
	}
	for _, c := range categories {
		if folded[strings.ToLower(strings.TrimSpace(c.Name))] {
			return c.Name
		}
	}
	return domain.Unclassified
}
