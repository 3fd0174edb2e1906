// internal/template/template.go
package template

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultRandomLength is the generated length for a bare "random" default.
const DefaultRandomLength = 32

var keyLine = regexp.MustCompile(`^([A-Z0-9_]+)=`)

type Variable struct {
	Key      string   `yaml:"key"`
	Question string   `yaml:"question,omitempty"`
	Info     []string `yaml:"info,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Default  string   `yaml:"default"`

	matcher *regexp.Regexp
}

func (v Variable) Matches(value string) bool {
	if v.matcher == nil {
		// no pattern accepts everything
		return true
	}
	return v.matcher.MatchString(value)
}

// SyntaxError is an authoring mistake caught while parsing.
type SyntaxError struct {
	Line    int
	Key     string // empty when no declaration followed the mistake
	Pattern string // the offending annotation or default text
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("template line %d (%s): %v", e.Line, e.Key, e.Err)
	}
	return fmt.Sprintf("template line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// annotations collected since the last committed declaration.
type annotations struct {
	question string
	info     []string
	pattern  string
	matcher  *regexp.Regexp
	bad      *SyntaxError
}

// Parse reads an annotated env template and returns its variables in
// declaration order. A redeclared key keeps only the later declaration.
func Parse(data []byte) ([]Variable, error) {
	var (
		vars []Variable
		buf  annotations
		line int
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())

		switch {
		case s == "":
			// spacing only, buffered annotations survive
		case strings.HasPrefix(s, "### "):
			buf.info = append(buf.info, s[len("### "):])
		case strings.HasPrefix(s, "## "):
			buf.question = s[len("## "):]
		case strings.HasPrefix(s, "# `"):
			pat := strings.Trim(s[2:], "`")
			buf.pattern = pat
			m, err := compileFull(pat)
			if err != nil {
				buf.matcher = nil
				if buf.bad == nil {
					buf.bad = &SyntaxError{Line: line, Pattern: pat, Err: err}
				}
				continue
			}
			buf.matcher = m
		case strings.HasPrefix(s, "#"):
			// section heading or plain comment, never attached
		default:
			m := keyLine.FindStringSubmatch(s)
			if m == nil {
				continue
			}
			key := m[1]
			if buf.bad != nil {
				buf.bad.Key = key
				return nil, buf.bad
			}
			def := s[len(key)+1:]
			if err := checkRandomDefault(line, key, def); err != nil {
				return nil, err
			}

			v := Variable{
				Key:      key,
				Question: buf.question,
				Info:     buf.info,
				Pattern:  buf.pattern,
				Default:  def,
				matcher:  buf.matcher,
			}
			for i := range vars {
				if vars[i].Key == key {
					vars = append(vars[:i], vars[i+1:]...)
					break
				}
			}
			vars = append(vars, v)
			buf = annotations{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if buf.bad != nil {
		// an uncompilable regex is a bug in the template even when no
		// declaration follows it
		return nil, buf.bad
	}
	return vars, nil
}

// compileFull checks the author's pattern as written, then anchors it so
// matching covers the entire value.
func compileFull(pat string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pat); err != nil {
		return nil, err
	}
	return regexp.Compile(`\A(?:` + pat + `)\z`)
}

// checkRandomDefault fails a random(N) default whose N is not a
// positive integer.
func checkRandomDefault(line int, key, def string) error {
	if _, ok := RandomLength(def); ok {
		return nil
	}
	if _, parenthesized := cutRandom(def); parenthesized {
		return &SyntaxError{
			Line:    line,
			Key:     key,
			Pattern: def,
			Err:     errors.New("random length must be a positive integer"),
		}
	}
	return nil
}

// RandomLength reports the generated length requested by a default or
// typed answer: DefaultRandomLength for "random", N for "random(N)".
func RandomLength(s string) (int, bool) {
	if s == "random" {
		return DefaultRandomLength, true
	}
	inner, ok := cutRandom(s)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func cutRandom(s string) (string, bool) {
	rest, ok := strings.CutPrefix(s, "random(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}
