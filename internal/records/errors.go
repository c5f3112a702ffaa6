package records

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Record store errors
var (
	ErrFileNotFound      = errors.New("data file not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ParseError reports malformed content in a standard's data file, wrapping
// the underlying syntax error. Line and Column are 1-based; zero means the
// parser reported no position.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// yaml.v3 has no exported syntax error type; positions only appear in the
// message text.
var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// newParseError attaches whatever position the underlying parser exposes:
// xml carries a line, json carries a byte offset, yaml embeds the line in
// its message.
func newParseError(path string, content []byte, err error) *ParseError {
	parseErr := &ParseError{Path: path, Err: err}

	var xmlErr *xml.SyntaxError
	var jsonErr *json.SyntaxError
	switch {
	case errors.As(err, &xmlErr):
		parseErr.Line = xmlErr.Line
	case errors.As(err, &jsonErr):
		parseErr.Line, parseErr.Column = positionAt(content, jsonErr.Offset)
	default:
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			if line, convErr := strconv.Atoi(m[1]); convErr == nil {
				parseErr.Line = line
			}
		}
	}
	return parseErr
}

// positionAt converts a byte offset to a 1-based line and column.
func positionAt(content []byte, offset int64) (line, column int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}

	line = 1
	lineStart := int64(0)
	for i := int64(0); i < offset; i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, int(offset-lineStart) + 1
}
