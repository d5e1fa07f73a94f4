package model

// Result is the outcome of generating one rule with one formatter.
type Result struct {
	FormatID string `json:"format"`
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Error    error  `json:"-"`
	RuleName string `json:"rule,omitempty"`
	// Bytes is the size of the written file.
	Bytes int `json:"bytes,omitempty"`
}

// ErrorMessage returns the error text, or "" for successful results.
func (r Result) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Error()
}
