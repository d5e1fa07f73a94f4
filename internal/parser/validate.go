package parser

import (
	"fmt"
	"strings"

	"github.com/klauern/rulegen/internal/model"
)

// ParseError reports rules that failed validation.
type ParseError struct {
	Problems []string
}

func (e *ParseError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid rules: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid rules (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// ValidateRules checks that every rule is named and that the set carries
// content. A section with frontmatter but no body is accepted as long as some
// rule in the set has a body.
func ValidateRules(rules []model.Rule) error {
	if len(rules) == 0 {
		return &ParseError{Problems: []string{"no rules found"}}
	}

	var problems []string
	withContent := 0
	for i, r := range rules {
		if strings.TrimSpace(r.Name) == "" {
			problems = append(problems, fmt.Sprintf("rule %d has an empty name", i+1))
		}
		if strings.TrimSpace(r.Content) != "" {
			withContent++
		}
	}
	if withContent == 0 {
		problems = append(problems, "source has no rule content")
	}

	if len(problems) > 0 {
		return &ParseError{Problems: problems}
	}
	return nil
}
