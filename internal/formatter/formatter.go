package formatter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
)

// ErrExists is returned when a target file exists and overwriting is off.
var ErrExists = errors.New("file already exists (use --force to overwrite)")

// Formatter generates the files of one target tool.
type Formatter interface {
	// Spec returns the static description of the format.
	Spec() model.FormatSpec

	// IsRuleCompatible reports whether the formatter writes rule at all.
	IsRuleCompatible(rule model.Rule) bool

	// OutputPath returns the file the rule is written to.
	OutputPath(rule model.Rule, gctx *model.GenerationContext) string

	// TransformContent returns the final file content for rule.
	TransformContent(rule model.Rule) string

	// Generate writes rule and reports the outcome. It never panics on I/O
	// errors; they are reported through the result.
	Generate(rule model.Rule, gctx *model.GenerationContext) model.Result
}

// WriteRule implements Generate for any formatter: it resolves the path,
// transforms the content and writes it, honoring gctx.Force.
func WriteRule(f Formatter, rule model.Rule, gctx *model.GenerationContext) model.Result {
	spec := f.Spec()
	path := f.OutputPath(rule, gctx)
	result := model.Result{
		FormatID: spec.ID,
		RuleName: rule.Name,
		FilePath: path,
	}

	n, err := WriteFile(path, f.TransformContent(rule), gctx.Force)
	if err != nil {
		logging.Debug("write failed",
			logging.Format(spec.ID),
			logging.Rule(rule.Name),
			logging.Path(path),
			logging.Err(err),
		)
		result.Error = err
		return result
	}

	logging.Debug("wrote rule",
		logging.Format(spec.ID),
		logging.Rule(rule.Name),
		logging.Path(path),
	)
	result.Success = true
	result.Bytes = n
	return result
}

// WriteFile writes content to path, creating parent directories. An existing
// file is only replaced when force is set. It returns the number of bytes
// written.
func WriteFile(path, content string, force bool) (int, error) {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return 0, fmt.Errorf("%s: %w", path, ErrExists)
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	// #nosec G306 - generated rule files are meant to be committed and shared
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(content), nil
}
