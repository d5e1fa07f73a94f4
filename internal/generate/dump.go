package generate

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
)

// DumpFormatID identifies dump files in results.
const DumpFormatID = "ide"

// DumpRule renders rule as a standalone section: a frontmatter block with the
// name first and the remaining metadata in key order, then the body. The
// heading-derived title is not written back.
func DumpRule(rule model.Rule) string {
	fields := frontmatter.NewFields()
	fields.Set("name", rule.Name)

	keys := make([]string, 0, len(rule.Metadata))
	for k := range rule.Metadata {
		if k == "name" || k == "title" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields.Set(k, rule.Metadata[k])
	}

	out := frontmatter.Render(fields)
	if body := formatter.Body(rule); body != "" {
		out += "\n" + body + "\n"
	}
	return out
}

// WriteDump writes every rule to dir as DumpRule output, one file per rule.
// Existing files are only replaced when force is set.
func WriteDump(rules []model.Rule, dir string, force bool) []model.Result {
	results := make([]model.Result, 0, len(rules))
	for _, rule := range rules {
		path := filepath.Join(dir, formatter.FileName(rule.Name)+DumpExtension)
		res := model.Result{FormatID: DumpFormatID, RuleName: rule.Name, FilePath: path}

		n, err := formatter.WriteFile(path, DumpRule(rule), force)
		if err != nil {
			res.Error = fmt.Errorf("dump %s: %w", rule.Name, err)
			logging.Debug("dump failed", logging.Rule(rule.Name), logging.Err(err))
		} else {
			res.Success = true
			res.Bytes = n
		}
		results = append(results, res)
	}

	logging.Info("wrote rule dump", logging.Path(dir), logging.Count(len(rules)))
	return results
}
