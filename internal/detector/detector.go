// Package detector finds which AI assistant targets a project already uses.
// It scans the project directory for the paths each formatter writes to and
// for tool-specific indicator directories.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/logging"
)

// Detection sources.
const (
	SourceOutput    = "output_path"
	SourceIndicator = "indicator"
	SourceEnv       = "env_var"
)

// EnvTargets lists format ids to treat as present regardless of the
// filesystem, comma separated.
const EnvTargets = "RULEGEN_DETECT"

// DetectedTarget is a formatter whose target was found in a project.
type DetectedTarget struct {
	FormatID   string
	Path       string  // Path that was detected
	Confidence float64 // 0.0-1.0, higher means more confident
	Source     string  // How it was detected
}

// indicators maps format ids to paths that suggest the tool is in use even
// when no rules were generated for it yet.
var indicators = map[string][]string{
	"claude":        {".claude"},
	"claude-memory": {".claude"},
	"codex":         {".codex"},
	"codex-memory":  {".codex"},
	"gemini":        {".gemini"},
	"gemini-memory": {".gemini"},
	"cursor":        {".cursor", ".cursorrules"},
	"windsurf":      {".windsurf", ".windsurfrules"},
	"copilot":       {".github/copilot-instructions.md"},
	"roo":           {".roo", ".roomodes"},
	"kilocode":      {".kilocode"},
	"trae":          {".trae"},
	"amazonq":       {".amazonq"},
	"augment":       {".augment"},
	"kiro":          {".kiro"},
	"junie":         {".junie"},
	"continue":      {".continue"},
}

// DetectAll scans projectDir for every formatter in reg and returns the ones
// found, in registry order.
func DetectAll(projectDir string, reg *formatter.Registry) []DetectedTarget {
	forced := envTargets()

	var detected []DetectedTarget
	for _, f := range reg.All() {
		id := f.Spec().ID
		if forced[id] {
			detected = append(detected, DetectedTarget{FormatID: id, Confidence: 1.0, Source: SourceEnv})
			continue
		}
		if result, found := DetectTarget(projectDir, f); found {
			detected = append(detected, result)
		}
	}

	logging.Debug("detected targets", logging.Path(projectDir), logging.Count(len(detected)))
	return detected
}

// DetectTarget checks whether projectDir already contains f's target.
func DetectTarget(projectDir string, f formatter.Formatter) (DetectedTarget, bool) {
	spec := f.Spec()

	outputPath := filepath.Join(projectDir, filepath.FromSlash(spec.DefaultPath))
	if pathExists(outputPath) {
		return DetectedTarget{
			FormatID:   spec.ID,
			Path:       outputPath,
			Confidence: 0.95,
			Source:     SourceOutput,
		}, true
	}

	for _, ind := range indicators[spec.ID] {
		p := filepath.Join(projectDir, filepath.FromSlash(ind))
		if pathExists(p) {
			return DetectedTarget{
				FormatID:   spec.ID,
				Path:       p,
				Confidence: 0.7,
				Source:     SourceIndicator,
			}, true
		}
	}

	return DetectedTarget{}, false
}

// IDs returns the format ids of detected.
func IDs(detected []DetectedTarget) []string {
	ids := make([]string, len(detected))
	for i, d := range detected {
		ids[i] = d.FormatID
	}
	return ids
}

func envTargets() map[string]bool {
	forced := make(map[string]bool)
	for _, id := range strings.Split(os.Getenv(EnvTargets), ",") {
		if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
			forced[id] = true
		}
	}
	return forced
}

// pathExists checks if a path exists on the filesystem
func pathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
