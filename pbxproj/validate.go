package pbxproj

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// RequiredKeys must each appear exactly once at the top level of a project.
var RequiredKeys = []string{"archiveVersion", "classes", "objectVersion", "objects", "rootObject"}

const (
	RuleLexical  = "lexical"
	RuleBalance  = "balance"
	RuleSections = "sections"
	RuleKeys     = "required-keys"
)

// Violation is one structural problem found by a validator.
type Violation struct {
	Rule    string
	Offset  int
	Message string
}

func (v Violation) String() string {
	if v.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", v.Rule, v.Offset, v.Message)
	}
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}

// Report is the outcome of validating a file.
type Report struct {
	Path       string
	Violations []Violation
}

func (r Report) OK() bool {
	return len(r.Violations) == 0
}

func (r *Report) add(rule string, offset int, format string, args ...interface{}) {
	r.Violations = append(r.Violations, Violation{Rule: rule, Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// Err turns a failed report into a *StructuralError naming op.
func (r Report) Err(op string) error {
	if r.OK() {
		return nil
	}
	return &StructuralError{Op: op, Reason: "validation failed for " + r.Path, Violations: r.Violations}
}

// Validator checks a file after it has been rewritten. An error means the
// file could not be checked at all; a failed check is reported through
// Report.
type Validator interface {
	Validate(path string) (Report, error)
}

// StructureValidator checks that a project file is still well formed.
type StructureValidator struct {
	fs afero.Fs
}

func NewStructureValidator(fs afero.Fs) *StructureValidator {
	return &StructureValidator{fs: fs}
}

func (v *StructureValidator) Validate(path string) (Report, error) {
	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return Report{Path: path}, &IOError{Op: "read", Path: path, Err: err}
	}
	report := CheckStructure(NewDocument(string(data)))
	report.Path = path
	return report, nil
}

// CheckStructure runs the structural checks on an in-memory document:
// section markers pair up without nesting or duplicates, braces and
// parentheses balance outside strings and comments, and the required
// top-level keys occur exactly once.
func CheckStructure(doc Document) Report {
	var report Report
	src := doc.text

	var stack []token
	keyCounts := make(map[string]int)
	seenSections := make(map[string]bool)
	var openSection *marker
	var pendingKey *token

	l := newLexer(src, 0, len(src))
	for {
		tok, ok, err := l.next()
		if err != nil {
			report.add(RuleLexical, l.pos, "%v", err)
			break
		}
		if !ok {
			break
		}

		if tok.kind == tokenComment {
			m, isMarker := parseMarker(tok.text(src))
			if !isMarker {
				continue
			}
			m.start, m.end = tok.start, tok.end
			switch {
			case m.begin && openSection != nil:
				report.add(RuleSections, m.start, "section %s begins inside section %s", m.name, openSection.name)
			case m.begin && seenSections[m.name]:
				report.add(RuleSections, m.start, "duplicate section %s", m.name)
				openSection = &m
			case m.begin:
				seenSections[m.name] = true
				openSection = &m
			case openSection == nil:
				report.add(RuleSections, m.start, "end of section %s without a begin marker", m.name)
			case openSection.name != m.name:
				report.add(RuleSections, m.start, "end of section %s while section %s is open", m.name, openSection.name)
				openSection = nil
			default:
				openSection = nil
			}
			continue
		}

		if pendingKey != nil {
			if tok.is(src, '=') && len(stack) == 1 {
				keyCounts[unquote(pendingKey.text(src))]++
			}
			pendingKey = nil
		}

		switch {
		case tok.kind == tokenWord || tok.kind == tokenString:
			if len(stack) == 1 && src[stack[0].start] == '{' {
				t := tok
				pendingKey = &t
			}
		case tok.is(src, '{') || tok.is(src, '('):
			stack = append(stack, tok)
		case tok.is(src, '}') || tok.is(src, ')'):
			if len(stack) == 0 {
				report.add(RuleBalance, tok.start, "unmatched %q", src[tok.start])
				continue
			}
			open := stack[len(stack)-1]
			if closerFor(src[open.start]) != src[tok.start] {
				report.add(RuleBalance, tok.start, "%q closes %q opened at offset %d", src[tok.start], src[open.start], open.start)
			}
			stack = stack[:len(stack)-1]
		}
	}

	for _, open := range stack {
		report.add(RuleBalance, open.start, "unclosed %q", src[open.start])
	}
	if openSection != nil {
		report.add(RuleSections, openSection.start, "section %s has no end marker", openSection.name)
	}
	var missing []string
	for _, key := range RequiredKeys {
		switch n := keyCounts[key]; {
		case n == 0:
			missing = append(missing, key)
		case n > 1:
			report.add(RuleKeys, -1, "key %s appears %d times", key, n)
		}
	}
	if len(missing) > 0 {
		report.add(RuleKeys, -1, "missing %s", strings.Join(missing, ", "))
	}
	return report
}
