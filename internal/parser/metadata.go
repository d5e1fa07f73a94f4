package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/model"
)

var titleLine = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t]*\r?$`)

// maxDescriptionLen caps descriptions derived from rule bodies.
const maxDescriptionLen = 160

// ExtractMetadata reads the first "# " heading as "title" and the key/value
// lines of a leading frontmatter block. Values are JSON decoded when possible
// and kept as raw strings otherwise. Frontmatter keys win over the heading.
func ExtractMetadata(content string) map[string]any {
	metadata := make(map[string]any)

	block := frontmatter.Split(content)
	if m := titleLine.FindStringSubmatch(block.Body); m != nil {
		metadata["title"] = m[1]
	}
	if !block.Found {
		return metadata
	}

	for _, line := range strings.Split(block.Raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		metadata[key] = decodeValue(strings.TrimSpace(value))
	}
	return metadata
}

func decodeValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// applyHints fills the apply type, description and glob of r from its
// metadata. When the metadata carries no apply type, description or glob, a
// description is derived from the body instead; alwaysApply alone still
// picks the apply type.
func applyHints(r *model.Rule) {
	md := r.Metadata

	applyRaw := firstString(md, "applyType", "apply_type", "apply")
	desc := firstString(md, "description")
	glob := globValue(md)
	_, hasAlways := md["alwaysApply"]

	if applyRaw == "" && desc == "" && glob == "" {
		r.Description = DeriveDescription(r.Content)
		if !hasAlways {
			return
		}
	} else {
		r.Description = desc
		r.Glob = glob
	}
	if t, ok := model.ParseApplyType(applyRaw); ok {
		r.ApplyType = t
		return
	}
	switch {
	case md["alwaysApply"] == true:
		r.ApplyType = model.ApplyAlways
	case glob != "":
		r.ApplyType = model.ApplyAuto
	case hasAlways:
		r.ApplyType = model.ApplyManual
	}
}

func firstString(md map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := md[k]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// globValue reads glob/globs, joining array values with commas.
func globValue(md map[string]any) string {
	for _, k := range []string{"glob", "globs"} {
		switch v := md[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ",")
			}
		}
	}
	return ""
}

// DeriveDescription returns the first line of content that is not a heading,
// a fence or blank, with any list marker removed.
func DeriveDescription(content string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || line == "" || strings.HasPrefix(line, "#") || line == frontmatter.Delimiter {
			continue
		}
		line = trimListMarker(line)
		if line == "" {
			continue
		}
		return truncate(line, maxDescriptionLen)
	}
	return ""
}

var listMarker = regexp.MustCompile(`^(?:[-*+]|\d+[.)])\s+`)

func trimListMarker(line string) string {
	return strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}
