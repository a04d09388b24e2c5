package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFirstField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain_password",
			input:    "hunter2",
			expected: "hunter2",
		},
		{
			name:     "first_of_many_fields",
			input:    "hunter2,label,3",
			expected: "hunter2",
		},
		{
			name:     "surrounding_whitespace_trimmed",
			input:    "  hunter2  ",
			expected: "hunter2",
		},
		{
			name:     "quoted_with_comma",
			input:    `"pass,word",note`,
			expected: "pass,word",
		},
		{
			name:     "quoted_with_doubled_quote",
			input:    `"pass""word"`,
			expected: `pass"word`,
		},
		{
			name:     "quoted_preserves_spaces",
			input:    `" spaced "`,
			expected: " spaced ",
		},
		{
			name:     "empty_line",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace_only_line",
			input:    "   ",
			expected: "",
		},
		{
			// Documented fallback, not a defect: an unterminated quoted
			// field yields the rest of the line minus the leading quote.
			name:     "unterminated_quote_fallback",
			input:    `"no closing quote`,
			expected: "no closing quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstField(tt.input); got != tt.expected {
				t.Errorf("FirstField(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	content := "hunter2\n\n\"pass,word\",extra\n   \nplain\n"
	filename := filepath.Join(t.TempDir(), "passwords.txt")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	entries, err := NewDefaultParser().ParseFile(filename)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	expected := []struct {
		password string
		line     int
	}{
		{"hunter2", 1},
		{"pass,word", 3},
		{"plain", 5},
	}

	if len(entries) != len(expected) {
		t.Fatalf("entries = %d, want %d", len(entries), len(expected))
	}
	for i, want := range expected {
		if entries[i].Password != want.password || entries[i].LineNumber != want.line {
			t.Errorf("entry %d = %q line %d, want %q line %d",
				i, entries[i].Password, entries[i].LineNumber, want.password, want.line)
		}
	}
}

func TestParseFileCRLF(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "passwords.txt")
	if err := os.WriteFile(filename, []byte("one\r\ntwo\r\n"), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	entries, err := NewDefaultParser().ParseFile(filename)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 2 || entries[0].Password != "one" || entries[1].Password != "two" {
		t.Errorf("entries = %+v, want one and two", entries)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := NewDefaultParser().ParseFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("ParseFile() succeeded for a missing file")
	}
}

func TestParseFileRejectsBinary(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(filename, []byte("text\x00\x00\x00more"), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	if _, err := NewDefaultParser().ParseFile(filename); err == nil {
		t.Fatal("ParseFile() accepted a binary file")
	}
}
