package report

import (
	"fmt"

	"air-relatorios/internal/domain"
)

var ErrPageNotPermitted = fmt.Errorf("page not permitted: %w", domain.ErrForbidden)

// PageAllowed applies a share token's page list. Nil or empty means every page.
func PageAllowed(allowed []string, page domain.Page) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, p := range allowed {
		if domain.Page(p) == page {
			return true
		}
	}
	return false
}

// AllowedPages lists the report pages a token may render, in render order.
func AllowedPages(allowed []string) []domain.Page {
	out := make([]domain.Page, 0, len(domain.ReportPages))
	for _, p := range domain.ReportPages {
		if PageAllowed(allowed, p) {
			out = append(out, p)
		}
	}
	return out
}
