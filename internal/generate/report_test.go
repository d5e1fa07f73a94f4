package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/klauern/rulegen/internal/model"
)

func TestReportSummary(t *testing.T) {
	r := &Report{
		Rules: []model.Rule{{Name: "a"}, {Name: "b"}},
		Dump: []model.Result{
			{FormatID: DumpFormatID, RuleName: "a", Success: true, Bytes: 500},
		},
		Results: []model.Result{
			{FormatID: "cursor", RuleName: "a", Success: true, Bytes: 1000},
			{FormatID: "cursor", RuleName: "b", Error: errors.New("file already exists")},
			{FormatID: "claude", RuleName: "a", Success: true, Bytes: 700},
		},
	}

	if r.Success() {
		t.Error("Success() should be false")
	}
	if got := r.TotalBytes(); got != 2200 {
		t.Errorf("TotalBytes() = %d, want 2200", got)
	}

	counts := r.ByFormat()
	if len(counts) != 3 {
		t.Fatalf("ByFormat() = %v", counts)
	}
	if counts[0].FormatID != DumpFormatID || counts[1].FormatID != "cursor" || counts[2].FormatID != "claude" {
		t.Errorf("ByFormat() order = %v", counts)
	}
	if counts[1].Succeeded != 1 || counts[1].Failed != 1 || counts[1].Bytes != 1000 {
		t.Errorf("cursor counts = %+v", counts[1])
	}

	short := r.Summary(false)
	for _, want := range []string{
		"Generated 3 file(s) from 2 rule(s) (2.2 kB)",
		"Succeeded: 3",
		"Failed:    1",
		"[cursor] b: file already exists",
	} {
		if !strings.Contains(short, want) {
			t.Errorf("Summary(false) missing %q:\n%s", want, short)
		}
	}
	if strings.Contains(short, "By format") {
		t.Error("Summary(false) should not include the breakdown")
	}

	long := r.Summary(true)
	if !strings.Contains(long, "By format:") || !strings.Contains(long, "claude") {
		t.Errorf("Summary(true) missing breakdown:\n%s", long)
	}
}
