package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gnomegl/pwncheck/pkg/batch"
	"github.com/gnomegl/pwncheck/pkg/fileutil"
)

// DefaultParser turns a password file into ordered entries. Each row's
// first CSV field is the password; blank lines are skipped but still
// advance the line number.
type DefaultParser struct{}

func NewDefaultParser() *DefaultParser {
	return &DefaultParser{}
}

func (p *DefaultParser) ParseFile(filename string) ([]batch.PasswordEntry, error) {
	isBinary, err := fileutil.IsBinaryFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check if file is binary %s: %w", filename, err)
	}
	if isBinary {
		return nil, fmt.Errorf("file %s appears to be a binary file", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	var entries []batch.PasswordEntry

	scanner := bufio.NewScanner(file)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		password := FirstField(scanner.Text())
		if password == "" {
			continue
		}

		entries = append(entries, batch.PasswordEntry{
			Password:   password,
			LineNumber: lineNumber,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return entries, nil
}

// quote-scanning states for FirstField
const (
	stateQuoted = iota
	stateQuotePending
)

// FirstField extracts the first CSV field of a row. Unquoted fields end at
// the first comma and are trimmed. Quoted fields follow standard CSV rules
// with doubled quotes as escapes. A quoted field with no closing quote
// falls back to the rest of the line minus the leading quote; long-standing
// behavior for malformed rows, kept as is.
func FirstField(line string) string {
	if !strings.HasPrefix(line, `"`) {
		if i := strings.IndexByte(line, ','); i >= 0 {
			line = line[:i]
		}
		return strings.TrimSpace(line)
	}

	var field strings.Builder
	state := stateQuoted

	for i := 1; i < len(line); i++ {
		ch := line[i]
		switch state {
		case stateQuoted:
			if ch == '"' {
				state = stateQuotePending
			} else {
				field.WriteByte(ch)
			}
		case stateQuotePending:
			if ch == '"' {
				// Doubled quote inside the field.
				field.WriteByte('"')
				state = stateQuoted
			} else {
				// The pending quote closed the field.
				return field.String()
			}
		}
	}

	if state == stateQuotePending {
		return field.String()
	}

	// Unterminated quote fallback.
	return line[1:]
}
