package layoutgen

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// fieldError is one config problem, anchored to the YAML line it was
// found on.
type fieldError struct {
	field string
	line  int
	msg   string
}

func (e fieldError) Error() string {
	if e.line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.field, e.line, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.field, e.msg)
}

// configChecker walks the config node tree and collects every problem.
type configChecker struct {
	errs []fieldError
}

func (c *configChecker) add(n *yaml.Node, field, msg string) {
	e := fieldError{field: field, msg: msg}
	if n != nil {
		e.line = n.Line
	}
	c.errs = append(c.errs, e)
}

// mapping returns the values of mapping node n by key, reporting unknown
// and repeated keys.
func (c *configChecker) mapping(n *yaml.Node, field string, known ...string) map[string]*yaml.Node {
	out := map[string]*yaml.Node{}
	if n.Kind != yaml.MappingNode {
		c.add(n, field, "must be a mapping")
		return out
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		sub := field + "." + k.Value
		if prev, ok := out[k.Value]; ok {
			c.add(k, sub, fmt.Sprintf("duplicate key, first set on line %d", prev.Line))
			continue
		}
		if !slices.Contains(known, k.Value) {
			c.add(k, sub, "unknown field")
		}
		out[k.Value] = v
	}
	return out
}

// scalars checks that each of keys present in m is a non-null scalar.
func (c *configChecker) scalars(m map[string]*yaml.Node, field string, keys ...string) {
	for _, k := range keys {
		if n, ok := m[k]; ok && (n.Kind != yaml.ScalarNode || n.Tag == "!!null") {
			c.add(n, field+"."+k, "must be a string")
		}
	}
}

// err returns the collected problems ordered by line, or nil.
func (c *configChecker) err(path string) error {
	if len(c.errs) == 0 {
		return nil
	}
	sort.SliceStable(c.errs, func(i, j int) bool {
		if c.errs[i].line != c.errs[j].line {
			return c.errs[i].line < c.errs[j].line
		}
		return c.errs[i].field < c.errs[j].field
	})
	merr := &multierror.Error{ErrorFormat: func(errs []error) string {
		var b strings.Builder
		b.WriteString("schema validation failed for " + path)
		for _, e := range errs {
			b.WriteString("\n- " + e.Error())
		}
		return b.String()
	}}
	for _, e := range c.errs {
		merr = multierror.Append(merr, e)
	}
	return merr
}

// settingsFile mirrors the YAML config; nil fields keep their defaults.
type settingsFile struct {
	Title  *string `yaml:"title"`
	Tokens struct {
		Bootloader *string `yaml:"bootloader"`
		Null       *string `yaml:"noop"`
		Numpad     *string `yaml:"numpad"`
	} `yaml:"tokens"`
	FontSize struct {
		From *string `yaml:"from"`
		To   *string `yaml:"to"`
	} `yaml:"font_size"`
}

// LoadSettings reads a YAML config file over [DefaultSettings]. An empty
// path yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	_, b, err := fileSHA256(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	return parseSettings(path, b)
}

func parseSettings(path string, b []byte) (Settings, error) {
	s := DefaultSettings()
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return Settings{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if len(root.Content) == 0 {
		// An empty file is a valid config with every default.
		return s, nil
	}
	if err := checkSettingsYAML(root.Content[0], path); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var f settingsFile
	if err := root.Content[0].Decode(&f); err != nil {
		return Settings{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	overlay(&s.Title, f.Title)
	overlay(&s.Tokens.Bootloader, f.Tokens.Bootloader)
	overlay(&s.Tokens.Null, f.Tokens.Null)
	overlay(&s.Tokens.Numpad, f.Tokens.Numpad)
	overlay(&s.FontSize.From, f.FontSize.From)
	overlay(&s.FontSize.To, f.FontSize.To)

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports settings that would produce an unstable document.
func (s Settings) Validate() error {
	var merr *multierror.Error
	from, to := s.FontSize.From, s.FontSize.To
	if from == "" && to != "" {
		merr = multierror.Append(merr, errors.New("font_size.to is set without font_size.from"))
	}
	if from != "" && to == "" {
		merr = multierror.Append(merr, errors.New("font_size.from is set without font_size.to"))
	}
	if from != "" && strings.Contains(to, from) {
		merr = multierror.Append(merr, fmt.Errorf("font_size.to %q contains font_size.from %q", to, from))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func checkSettingsYAML(root *yaml.Node, path string) error {
	var c configChecker
	m := c.mapping(root, "config", "title", "tokens", "font_size")
	c.scalars(m, "config", "title")
	if n, ok := m["tokens"]; ok {
		c.scalars(c.mapping(n, "config.tokens", "bootloader", "noop", "numpad"), "config.tokens", "bootloader", "noop", "numpad")
	}
	if n, ok := m["font_size"]; ok {
		fs := c.mapping(n, "config.font_size", "from", "to")
		if n.Kind == yaml.MappingNode {
			for _, k := range []string{"from", "to"} {
				if _, ok := fs[k]; !ok {
					c.add(n, "config.font_size."+k, "missing; from and to are set together")
				}
			}
		}
		c.scalars(fs, "config.font_size", "from", "to")
	}
	return c.err(path)
}
