package derive

import (
	"regexp"
	"strings"

	"github.com/derive-go/derive/lexer"
)

// Directive is one "derive:<ns> [args]" line from a doc comment. Directives
// attach at three syntactic levels: type, variant, and field.
type Directive struct {
	// Ns is the namespace word after "derive:".
	Ns string
	// Args is the remainder of the line, unparsed.
	Args string
	Pos  lexer.Position
}

// Level is the syntactic level an attribute applies to, used for
// context-aware validation.
type Level int

const (
	LevelType Level = iota
	LevelVariant
	LevelField
)

func (l Level) String() string {
	switch l {
	case LevelType:
		return "Type"
	case LevelVariant:
		return "Variant"
	case LevelField:
		return "Field"
	}
	return "Unknown"
}

// Attr is implemented by namespaced attributes. Implementors identify
// themselves with a fixed namespace and parse their own argument structure.
type Attr interface {
	// Namespace under which the attribute is recognised, eg. "parse" for
	// "derive:parse" directives.
	Namespace() string
	// Parse the directive's argument text into the receiver.
	Parse(args string) error
}

// FindAttr scans directives for the attribute's namespace and parses a
// match into attr.
//
// Returns false if no matching directive is present. Fails if the same
// namespace appears more than once, with the diagnostic at the second
// occurrence.
func FindAttr(dirs []Directive, attr Attr) (bool, error) {
	found := false
	for _, d := range dirs {
		if d.Ns != attr.Namespace() {
			continue
		}
		if found {
			return false, Errorf(d.Pos, "Attribute derive:%s Is Already Configured", attr.Namespace())
		}
		if err := attr.Parse(d.Args); err != nil {
			return false, AnnotateError(d.Pos, err)
		}
		found = true
	}
	return found, nil
}

// RequireAttr behaves like FindAttr, but a missing attribute is an error
// anchored at the caller-supplied fallback position.
func RequireAttr(dirs []Directive, attr Attr, pos lexer.Position) error {
	found, err := FindAttr(dirs, attr)
	if err != nil {
		return err
	}
	if !found {
		return Errorf(pos, "Attribute derive:%s Is Required", attr.Namespace())
	}
	return nil
}

// ForbidAttr ensures the directives contain no occurrence of the namespace
// at the given level.
func ForbidAttr(dirs []Directive, ns string, level Level) error {
	for _, d := range dirs {
		if d.Ns == ns {
			return Errorf(d.Pos, "Attribute derive:%s Is Not Allowed At The %s Level", ns, level)
		}
	}
	return nil
}

var directiveRe = regexp.MustCompile(`^derive:([A-Za-z_][A-Za-z0-9_-]*)(?:\s+(.*))?$`)

// parseDirectiveLine recognises one cleaned doc comment line as a
// directive. The leading comment marker must already be stripped.
func parseDirectiveLine(line string, pos lexer.Position) (Directive, bool) {
	m := directiveRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Directive{}, false
	}
	return Directive{Ns: m[1], Args: strings.TrimSpace(m[2]), Pos: pos}, true
}
