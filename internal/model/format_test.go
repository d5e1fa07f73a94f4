package model

import (
	"errors"
	"testing"
)

func TestCategoryValidation(t *testing.T) {
	for _, c := range AllCategories() {
		if !c.IsValid() {
			t.Errorf("AllCategories() returned invalid category %q", c)
		}
	}
	if Category("nope").IsValid() {
		t.Error("unknown category should be invalid")
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Category
		wantErr bool
	}{
		"directory":       {input: "directory", want: CategoryDirectory},
		"directory alias": {input: "directory-based", want: CategoryDirectory},
		"root alias":      {input: "root", want: CategoryRootFile},
		"root file":       {input: "root-file", want: CategoryRootFile},
		"memory":          {input: "memory", want: CategoryMemory},
		"unknown":         {input: "cloud", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResultErrorMessage(t *testing.T) {
	ok := Result{FormatID: "cursor", Success: true}
	if ok.ErrorMessage() != "" {
		t.Errorf("ErrorMessage() = %q, want empty", ok.ErrorMessage())
	}

	failed := Result{FormatID: "cursor", Error: errors.New("boom")}
	if failed.ErrorMessage() != "boom" {
		t.Errorf("ErrorMessage() = %q, want %q", failed.ErrorMessage(), "boom")
	}
}
