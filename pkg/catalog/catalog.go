// Package catalog loads named lists of select options from YAML.
//
// A catalog file maps a list name to its options:
//
//	countries:
//	  - {label: United States, value: us}
//	  - {label: Canada, value: ca, disabled: true}
//	priorities:
//	  - {label: Low, value: 1}
//	  - {label: High, value: 3}
//
// Values are kept as YAML nodes until [Options] decodes them into the value
// type the field uses, so one file can hold lists of strings and numbers.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/selectfield/pkg/selectfield"
)

// ErrUnknownList is returned by Options when the catalog has no list with the
// requested name.
var ErrUnknownList = errors.New("catalog: unknown list")

var errMissingValue = errors.New("missing value")

// Entry is one option as written in a catalog file.
type Entry struct {
	Label    string    `yaml:"label"`
	Value    yaml.Node `yaml:"value"`
	Disabled bool      `yaml:"disabled,omitempty"`

	line int
}

// Line returns the source line of the entry, or 0 when unknown.
func (e Entry) Line() int {
	return e.line
}

// Catalog holds the option lists of one file.
type Catalog struct {
	// Source is the file the catalog was read from, if any.
	Source string
	Lists  map[string][]Entry
	// order keeps list names in file order.
	order []string
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := &Catalog{Lists: make(map[string][]Entry)}
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse catalog: line %d: expected a mapping of list names", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if _, ok := c.Lists[name]; ok {
			return nil, fmt.Errorf("failed to parse catalog: line %d: list %q defined twice", root.Content[i].Line, name)
		}
		list := root.Content[i+1]
		var entries []Entry
		if err := list.Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to parse list %q: %w", name, err)
		}
		for j := range entries {
			if j < len(list.Content) {
				entries[j].line = list.Content[j].Line
			}
		}
		c.Lists[name] = entries
		c.order = append(c.order, name)
	}
	return c, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Source = path
	return c, nil
}

// LoadFS reads and parses the catalog file name from fsys. It is meant for
// catalogs embedded with go:embed.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c.Source = name
	return c, nil
}

// Must panics if err is non-nil and returns c otherwise. It wraps calls to
// Load or LoadFS in variable initializations.
func Must(c *Catalog, err error) *Catalog {
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the list names in file order.
func (c *Catalog) Names() []string {
	if c.orderMatches() {
		return append([]string(nil), c.order...)
	}
	// Lists was filled or edited by hand.
	names := make([]string, 0, len(c.Lists))
	for name := range c.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// orderMatches reports whether the recorded source order names exactly the
// lists in Lists.
func (c *Catalog) orderMatches() bool {
	if len(c.order) != len(c.Lists) {
		return false
	}
	for _, name := range c.order {
		if _, ok := c.Lists[name]; !ok {
			return false
		}
	}
	return true
}

// Options decodes the list called name into select options with values of
// type V.
func Options[V comparable](c *Catalog, name string) ([]selectfield.Option[V], error) {
	entries, ok := c.Lists[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownList, name)
	}
	options := make([]selectfield.Option[V], len(entries))
	for i, e := range entries {
		var v V
		if e.Value.Kind == 0 {
			return nil, fmt.Errorf("list %q option %d (%q): %w", name, i, e.Label, errMissingValue)
		}
		if err := e.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("list %q option %d (%q): %w", name, i, e.Label, err)
		}
		options[i] = selectfield.Option[V]{Label: e.Label, Value: v, Disabled: e.Disabled}
	}
	return options, nil
}

// MustOptions is like Options but panics on error. It is meant for catalogs
// embedded in the binary, where a bad file is a programming error.
func MustOptions[V comparable](c *Catalog, name string) []selectfield.Option[V] {
	options, err := Options[V](c, name)
	if err != nil {
		panic(err)
	}
	return options
}
