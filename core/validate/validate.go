// Package validate provides construction-time validation primitives.
// Constructors collect every detectable violation instead of failing on the
// first one, so a caller can correct a whole design document in one pass.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Violation is a single failed check, addressed by a location path.
type Violation struct {
	// Path locates the offending field (dot notation for nested fields,
	// bracket notation for list indices, e.g. "table_list[0].gsis[2].name").
	Path string

	// Message is the human-readable failure description.
	Message string
}

// String renders the violation as a single output line.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Violations is an ordered list of violations. It implements error; the
// rendered form is one line per violation, in the order the checks ran.
type Violations []Violation

// Error renders all violations, newline-separated, without truncation.
func (v Violations) Error() string {
	lines := make([]string, len(v))
	for i, violation := range v {
		lines[i] = violation.String()
	}
	return strings.Join(lines, "\n")
}

// Collector accumulates violations under a location prefix.
// Child collectors created by Field and Index share the parent's backing
// list, so a single Err call at the root sees everything.
type Collector struct {
	prefix     string
	violations *Violations
}

// NewCollector creates a root collector with an empty path.
func NewCollector() *Collector {
	return &Collector{violations: &Violations{}}
}

// Field returns a collector scoped to a nested field.
func (c *Collector) Field(name string) *Collector {
	return &Collector{prefix: joinPath(c.prefix, name), violations: c.violations}
}

// Index returns a collector scoped to a list element.
func (c *Collector) Index(i int) *Collector {
	return &Collector{prefix: c.prefix + "[" + strconv.Itoa(i) + "]", violations: c.violations}
}

// Add records a violation at the collector's current path. The message is
// taken as-is; cross-entity checks use this for their final message text.
func (c *Collector) Add(message string) {
	*c.violations = append(*c.violations, Violation{Path: c.prefix, Message: message})
}

// AddAt records a violation at a nested field with a pre-built message.
func (c *Collector) AddAt(field, message string) {
	*c.violations = append(*c.violations, Violation{Path: joinPath(c.prefix, field), Message: message})
}

// RequireNonEmpty checks that a string field is non-empty.
func (c *Collector) RequireNonEmpty(field, value string) {
	if value == "" {
		c.AddAt(field, fmt.Sprintf("cannot be empty. %s: %q", field, value))
	}
}

// RequireAtLeast checks an inclusive lower bound on an integer field.
func (c *Collector) RequireAtLeast(field string, value, min int) {
	if value < min {
		c.AddAt(field, fmt.Sprintf("must be at least %d. %s: %d", min, field, value))
	}
}

// RequireAtMost checks an inclusive upper bound on an integer field.
func (c *Collector) RequireAtMost(field string, value, max int) {
	if value > max {
		c.AddAt(field, fmt.Sprintf("must be at most %d. %s: %d", max, field, value))
	}
}

// RequireGreaterThan checks an exclusive lower bound on an integer field.
func (c *Collector) RequireGreaterThan(field string, value, min int) {
	if value <= min {
		c.AddAt(field, fmt.Sprintf("must be greater than %d. %s: %d", min, field, value))
	}
}

// RequireGreaterThanFloat checks an exclusive lower bound on a float field.
func (c *Collector) RequireGreaterThanFloat(field string, value, min float64) {
	if value <= min {
		c.AddAt(field, fmt.Sprintf("must be greater than %s. %s: %s",
			formatFloat(min), field, formatFloat(value)))
	}
}

// Err returns the accumulated violations as an error, or nil if every
// check passed.
func (c *Collector) Err() error {
	if len(*c.violations) == 0 {
		return nil
	}
	return *c.violations
}

// Violations returns the accumulated list.
func (c *Collector) Violations() Violations {
	return *c.violations
}

// Prefixed re-roots an error's violations under a path prefix, so entity
// constructors can report paths relative to themselves and callers can place
// them inside a larger document. Non-violation errors are wrapped as a
// single violation at the prefix itself.
func Prefixed(prefix string, err error) Violations {
	v, ok := err.(Violations)
	if !ok {
		return Violations{{Path: prefix, Message: err.Error()}}
	}
	out := make(Violations, len(v))
	for i, violation := range v {
		path := prefix
		if violation.Path != "" {
			path = joinPath(prefix, violation.Path)
		}
		out[i] = Violation{Path: path, Message: violation.Message}
	}
	return out
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
