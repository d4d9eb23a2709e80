package usecases

import (
	"fmt"
	"slices"
	"strings"

	"leaguemotd/internal/shared/errors"
)

// LanguagePolicy is the allow-list of language codes callers may manage.
type LanguagePolicy struct {
	codes []string
	index map[string]struct{}
}

func NewLanguagePolicy(codes []string) *LanguagePolicy {
	p := &LanguagePolicy{index: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		if _, dup := p.index[code]; dup || code == "" {
			continue
		}
		p.index[code] = struct{}{}
		p.codes = append(p.codes, code)
	}
	slices.Sort(p.codes)
	return p
}

func (p *LanguagePolicy) Allows(lang string) bool {
	_, ok := p.index[lang]
	return ok
}

// Codes returns the allowed codes in sorted order.
func (p *LanguagePolicy) Codes() []string {
	return slices.Clone(p.codes)
}

// Check returns a validation error for a code outside the allow-list.
func (p *LanguagePolicy) Check(lang string) error {
	if p.Allows(lang) {
		return nil
	}
	return errors.NewValidationError(
		fmt.Sprintf("unsupported language: %q", lang),
		"valid languages: "+strings.Join(p.codes, ", "),
	)
}
