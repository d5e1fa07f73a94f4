package model

import "fmt"

// Category groups formatters by how they place rules on disk.
type Category string

const (
	// CategoryDirectory writes one file per rule into a tool-specific directory.
	CategoryDirectory Category = "directory"
	// CategoryRootFile writes the root rule to a single fixed file.
	CategoryRootFile Category = "root-file"
	// CategoryMemory writes one file per non-root rule into a memory directory.
	CategoryMemory Category = "memory"
)

// IsValid returns true if the category is recognized
func (c Category) IsValid() bool {
	switch c {
	case CategoryDirectory, CategoryRootFile, CategoryMemory:
		return true
	default:
		return false
	}
}

// AllCategories returns all formatter categories
func AllCategories() []Category {
	return []Category{CategoryDirectory, CategoryRootFile, CategoryMemory}
}

// ParseCategory parses a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch s {
	case "dir", "directory-based":
		c = CategoryDirectory
	case "root", "root-file-based":
		c = CategoryRootFile
	case "memories", "memory-based":
		c = CategoryMemory
	}
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q (valid: directory, root-file, memory)", s)
	}
	return c, nil
}

// FormatSpec is the static description of a target format.
type FormatSpec struct {
	ID                    string
	Name                  string
	Category              Category
	Extension             string
	SupportsMultipleRules bool
	RequiresMetadata      bool
	// DefaultPath is a directory for per-rule formats and a file path for
	// root-file formats, relative to the output directory.
	DefaultPath string
}

// GenerationContext carries the settings of one generation run. Formatters
// must treat it as read-only.
type GenerationContext struct {
	OutputDir string
	Force     bool
	Verbose   bool
}
