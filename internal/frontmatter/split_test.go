package frontmatter

import "testing"

func TestSplit(t *testing.T) {
	tests := map[string]struct {
		input     string
		wantFound bool
		wantRaw   string
		wantBody  string
	}{
		"yaml frontmatter": {
			input: `---
name: test-rule
description: A test rule
---
This is the content`,
			wantFound: true,
			wantRaw:   "name: test-rule\ndescription: A test rule",
			wantBody:  "This is the content",
		},
		"windows line endings": {
			input:     "---\r\nname: test\r\n---\r\nContent",
			wantFound: true,
			wantRaw:   "name: test",
			wantBody:  "Content",
		},
		"no frontmatter": {
			input:    "Just plain content",
			wantBody: "Just plain content",
		},
		"no closing delimiter": {
			input: `---
name: test
This looks like frontmatter but has no closing delimiter`,
			wantBody: "---\nname: test\nThis looks like frontmatter but has no closing delimiter",
		},
		"empty frontmatter": {
			input: `---
---
Content only`,
			wantFound: true,
			wantBody:  "Content only",
		},
		"frontmatter without body": {
			input: `---
name: test
---`,
			wantFound: true,
			wantRaw:   "name: test",
		},
		"closing delimiter followed by text": {
			input:    "---\nname: x\n--- trailing\nbody",
			wantBody: "---\nname: x\n--- trailing\nbody",
		},
		"empty file": {
			input: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Split(tt.input)
			if got.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if got.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.wantRaw)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
		})
	}
}

func TestStripIsIdempotent(t *testing.T) {
	inputs := []string{
		"---\ndescription: \"x\"\n---\n# Body\n\ntext",
		"# Body without frontmatter",
		"",
	}

	for _, in := range inputs {
		once := Strip(in)
		twice := Strip(once)
		if once != twice {
			t.Errorf("Strip not idempotent for %q: %q then %q", in, once, twice)
		}
	}

	if got := Strip("plain"); got != "plain" {
		t.Errorf("Strip(plain) = %q, want unchanged", got)
	}
}
