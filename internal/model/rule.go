// Package model defines the rules, formats and results shared across rulegen.
package model

import "strings"

// ApplyType is the inclusion mode hint some targets use to decide when a rule
// is loaded by the assistant.
type ApplyType string

const (
	// ApplyAuto attaches the rule when files matching its glob are in context.
	ApplyAuto ApplyType = "auto"
	// ApplyManual only loads the rule when it is referenced explicitly.
	ApplyManual ApplyType = "manual"
	// ApplyAlways loads the rule for every request.
	ApplyAlways ApplyType = "always"
)

// IsValid returns true if the apply type is recognized
func (a ApplyType) IsValid() bool {
	switch a {
	case ApplyAuto, ApplyManual, ApplyAlways:
		return true
	default:
		return false
	}
}

// ParseApplyType parses an apply type, accepting the spellings used by the
// different tools (alwaysApply, always_on, agent_requested, ...).
func ParseApplyType(s string) (ApplyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "always_apply", "always_on", "alwaysapply":
		return ApplyAlways, true
	case "auto", "auto_attached", "glob", "filematch", "agent_requested", "model_decision":
		return ApplyAuto, true
	case "manual", "manually":
		return ApplyManual, true
	default:
		return "", false
	}
}

// rootNames are the rule names that mark a rule as the project-wide root rule.
var rootNames = map[string]bool{
	"default": true,
	"root":    true,
	"global":  true,
	"main":    true,
	"index":   true,
}

// IsRootName reports whether name designates a root rule.
func IsRootName(name string) bool {
	return rootNames[strings.ToLower(strings.TrimSpace(name))]
}

// Rule is a single rule parsed from a source document. Rules are produced once
// by the parser and shared read-only by every formatter in a run.
type Rule struct {
	Name     string         `json:"name"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	IsRoot   bool           `json:"is_root"`

	// Optional hints, taken from metadata or derived from the content.
	ApplyType   ApplyType `json:"apply_type,omitempty"`
	Description string    `json:"description,omitempty"`
	Glob        string    `json:"glob,omitempty"`
}

// Title returns the heading extracted from the rule body, if any.
func (r Rule) Title() string {
	if r.Metadata == nil {
		return ""
	}
	if t, ok := r.Metadata["title"].(string); ok {
		return t
	}
	return ""
}

// MetaString returns the metadata value for key as a string, or "" when the
// key is missing or not a string.
func (r Rule) MetaString(key string) string {
	if r.Metadata == nil {
		return ""
	}
	if s, ok := r.Metadata[key].(string); ok {
		return s
	}
	return ""
}
