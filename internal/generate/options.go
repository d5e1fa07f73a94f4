package generate

// DefaultIDEFolder is the directory of the flat rule dump, relative to the
// output directory. It is distinct from every formatter's own directory.
const DefaultIDEFolder = ".ai-rules"

// DumpExtension is the file extension of dumped rules. Dumped files use the
// multi-section dialect so they can be fed back in as a source.
const DumpExtension = ".mdc"

// Options configures one generation run.
type Options struct {
	// Input is a file path or http(s) URL.
	Input string

	// OutputDir is the project directory files are written under.
	OutputDir string

	// Formats restricts generation to these formatter ids. Empty selects
	// every registered formatter.
	Formats []string

	// Force overwrites existing files.
	Force bool

	// Verbose reports every attempt and a per-format breakdown.
	Verbose bool

	// IDEStyle writes the flat rule dump when more than one rule is parsed.
	IDEStyle bool

	// IDEFolder names the dump directory. Empty means DefaultIDEFolder.
	IDEFolder string

	// Detect restricts generation to targets already present in OutputDir.
	Detect bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		IDEStyle:  true,
		IDEFolder: DefaultIDEFolder,
	}
}

func (o Options) outputDir() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}

func (o Options) ideFolder() string {
	if o.IDEFolder == "" {
		return DefaultIDEFolder
	}
	return o.IDEFolder
}
