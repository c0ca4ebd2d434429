package lab

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/netlabtools/labviz/pkg/errors"
)

// labPrefix marks lab-level metadata lines (LAB_NAME, LAB_DESCRIPTION, ...).
const labPrefix = "LAB_"

// nodeLineRe matches node property declarations: name[prop]="value".
// The value quotes are optional and stripped.
var nodeLineRe = regexp.MustCompile(`^(\w+)\[([^\]]+)\]="?([^"]*)"?`)

// ParseFile reads and parses a lab.conf file.
// A missing or unreadable file yields ErrCodeFileNotFound.
func ParseFile(path string) (*Lab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse consumes lab.conf text and returns the classified lab graph.
//
// The parser is deliberately lenient: blank lines, comments, and lines
// matching no known production are skipped without error, favoring a
// best-effort diagram over hard failures on slightly malformed input.
// Classification runs exactly once, after all lines are consumed.
func Parse(r io.Reader) (*Lab, error) {
	l := New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.parseLine(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read lab config")
	}

	l.Classify()
	return l, nil
}

// parseLine handles a single non-blank, non-comment line.
func (l *Lab) parseLine(line string) {
	if strings.HasPrefix(line, labPrefix) {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return
		}
		l.Info[key] = strings.Trim(value, `"`)
		return
	}

	m := nodeLineRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	name, prop, value := m[1], m[2], m[3]

	node := l.EnsureNode(name)
	switch {
	case prop == "image":
		node.Image = value
	case isDigits(prop):
		// Interface declaration: attach the node to the collision domain.
		node.AddInterface(prop, value)
		l.EnsureConnection(value).AddMember(node, prop)
	default:
		node.AddProperty(prop, value)
	}
}

// isDigits reports whether s is a non-empty decimal digit string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
