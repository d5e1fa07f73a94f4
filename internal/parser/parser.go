package parser

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
)

// DefaultRuleName names a rule when neither the document nor its source
// provide one.
const DefaultRuleName = "default"

// Dialect is the layout of a source document.
type Dialect string

const (
	// DialectMarkdown holds one rule per document.
	DialectMarkdown Dialect = "markdown"
	// DialectMDC holds a sequence of frontmatter+body sections.
	DialectMDC Dialect = "mdc"
)

// DetectDialect picks the dialect from the source's extension. Unknown or
// missing extensions are treated as Markdown.
func DetectDialect(sourcePath string) Dialect {
	if strings.EqualFold(filepath.Ext(sourceBase(sourcePath)), ".mdc") {
		return DialectMDC
	}
	return DialectMarkdown
}

// DefaultName derives a rule name from the source's base name without its
// extension, falling back to DefaultRuleName.
func DefaultName(sourcePath string) string {
	base := sourceBase(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(name) == "" || name == "." || name == "/" {
		return DefaultRuleName
	}
	return name
}

// sourceBase returns the last path element of a file path or URL.
func sourceBase(sourcePath string) string {
	if sourcePath == "" {
		return ""
	}
	if u, err := url.Parse(sourcePath); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return path.Base(u.Path)
	}
	return filepath.Base(sourcePath)
}

// Parse splits content into rules. sourcePath, which may be empty, selects the
// dialect and supplies default names. The result is validated with
// ValidateRules before it is returned.
func Parse(content, sourcePath string) ([]model.Rule, error) {
	defaultName := DefaultName(sourcePath)
	dialect := DetectDialect(sourcePath)

	logging.Debug("parsing rules",
		logging.Path(sourcePath),
		logging.Operation("parse"),
		"dialect", string(dialect),
	)

	var rules []model.Rule
	if dialect == DialectMDC {
		rules = parseSections(content, defaultName)
	}
	if len(rules) == 0 {
		rules = []model.Rule{parseSingle(content, defaultName)}
	}

	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	logging.Debug("parsed rules", logging.Path(sourcePath), logging.Count(len(rules)))
	return rules, nil
}

// parseSingle treats the whole document as one rule.
func parseSingle(content, defaultName string) model.Rule {
	metadata := ExtractMetadata(content)
	name := ruleName(frontmatter.Split(content).Raw, metadata)
	if name == "" {
		name = defaultName
	}
	return newRule(name, frontmatter.Strip(content), metadata)
}

var (
	delimiterLine = regexp.MustCompile(`(?m)^---[ \t]*\r?$`)
	nameLine      = regexp.MustCompile(`(?m)^name:[ \t]*(.+?)[ \t]*\r?$`)
)

type section struct {
	frontmatter string
	body        string
}

// splitSections pairs up delimiter lines: the text between the first two is a
// frontmatter block and the text up to the next delimiter is its body.
// Delimiters inside code fences are not distinguished from section breaks.
func splitSections(content string) []section {
	locs := delimiterLine.FindAllStringIndex(content, -1)
	var sections []section
	for i := 0; i+1 < len(locs); i += 2 {
		open, closing := locs[i], locs[i+1]
		fm := strings.Trim(content[open[1]:closing[0]], "\r\n")

		bodyEnd := len(content)
		// A trailing unpaired delimiter stays part of the last body.
		if i+3 < len(locs) {
			bodyEnd = locs[i+2][0]
		}
		sections = append(sections, section{
			frontmatter: fm,
			body:        content[closing[1]:bodyEnd],
		})
	}
	return sections
}

// parseSections turns every frontmatter+body section into a rule.
func parseSections(content, defaultName string) []model.Rule {
	sections := splitSections(content)
	rules := make([]model.Rule, 0, len(sections))
	for i, s := range sections {
		raw := frontmatter.Delimiter + "\n" + s.frontmatter + "\n" + frontmatter.Delimiter + "\n" + s.body
		metadata := ExtractMetadata(raw)

		name := ruleName(s.frontmatter, metadata)
		if name == "" {
			name = fmt.Sprintf("%s-%d", defaultName, i+1)
		}

		rules = append(rules, newRule(name, s.body, metadata))
	}
	return rules
}

// ruleName reads the name: line of a frontmatter block as written, since
// generic parsing may coerce it to a number or bool. It falls back to the
// decoded metadata and returns "" when neither has a name.
func ruleName(frontmatterText string, metadata map[string]any) string {
	if m := nameLine.FindStringSubmatch(frontmatterText); m != nil {
		if name := unquote(m[1]); name != "" {
			return name
		}
	}
	if n, ok := metadata["name"]; ok && n != nil {
		return strings.TrimSpace(fmt.Sprint(n))
	}
	return ""
}

func newRule(name, body string, metadata map[string]any) model.Rule {
	content := strings.TrimSpace(body)
	r := model.Rule{
		Name:     name,
		Content:  content,
		Metadata: metadata,
		IsRoot:   model.IsRootName(name),
	}
	applyHints(&r)
	return r
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
