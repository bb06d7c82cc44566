// Package prompt renders the fixed set of analysis templates into text
// prompts. Templates live in templates.go as plain content; rendering is
// substitution only, no business math happens here.
package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrMissingPlaceholder = errors.New("missing placeholder")
)

// MissingPlaceholderError identifies which required name was absent.
type MissingPlaceholderError struct {
	Template string
	Name     string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("template %q: missing placeholder %q", e.Template, e.Name)
}

func (e *MissingPlaceholderError) Is(target error) bool {
	return target == ErrMissingPlaceholder
}

// Values maps placeholder names to the values substituted into a template.
type Values map[string]any

// Template is one named prompt with its required placeholders. Placeholders
// are derived from the text so the two cannot drift apart.
type Template struct {
	ID           string
	Placeholders []string
	Text         string
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

var registry = map[string]Template{}

func register(id, text string) {
	seen := map[string]bool{}
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	registry[id] = Template{ID: id, Placeholders: names, Text: text}
}

// Lookup returns the template for id.
func Lookup(id string) (Template, error) {
	tpl, ok := registry[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tpl, nil
}

// Placeholders returns the names id requires at render time.
func Placeholders(id string) ([]string, error) {
	tpl, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), tpl.Placeholders...), nil
}

// Render fills the named template with values. Every placeholder referenced
// by the template must be present in values or rendering fails with a
// MissingPlaceholderError. Floats are formatted to two decimal places before
// substitution.
func Render(id string, values Values) (string, error) {
	tpl, err := Lookup(id)
	if err != nil {
		return "", err
	}

	pairs := make([]string, 0, 2*len(tpl.Placeholders))
	for _, name := range tpl.Placeholders {
		v, ok := values[name]
		if !ok {
			return "", &MissingPlaceholderError{Template: id, Name: name}
		}
		pairs = append(pairs, "{"+name+"}", formatValue(v))
	}

	return strings.NewReplacer(pairs...).Replace(tpl.Text), nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
