// Package content loads the portfolio document rendered by the TUI: the owner, the
// ordered sections, and the cards, skills and stats inside them.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amelara/folio/internal/core/notify"
)

//go:embed default.yaml
var defaultContent []byte

// Kind selects how a section body is laid out.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindCards    Kind = "cards"
	KindSkills   Kind = "skills"
	KindStats    Kind = "stats"
	KindContact  Kind = "contact"
)

// Kinds lists every valid section kind.
var Kinds = []Kind{KindMarkdown, KindCards, KindSkills, KindStats, KindContact}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Portfolio is the whole page.
type Portfolio struct {
	Name     string    `yaml:"name"`
	Tagline  string    `yaml:"tagline"`
	Email    string    `yaml:"email,omitempty"`
	Notice   *Notice   `yaml:"notice,omitempty"`
	Sections []Section `yaml:"sections"`
}

// Notice is an announcement shown as a toast when the page opens.
type Notice struct {
	Message  string          `yaml:"message"`
	Severity notify.Severity `yaml:"severity,omitempty"`
}

// Section is one navigable part of the page. Body is markdown and is rendered above
// the kind-specific items.
type Section struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Kind   Kind    `yaml:"kind"`
	Body   string  `yaml:"body,omitempty"`
	Cards  []Card  `yaml:"cards,omitempty"`
	Skills []Skill `yaml:"skills,omitempty"`
	Stats  []Stat  `yaml:"stats,omitempty"`
}

// Card is a titled block inside a cards section.
type Card struct {
	ID       string   `yaml:"id,omitempty"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Body     string   `yaml:"body,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// Skill is a labelled progress bar. Level is a percentage.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Stat is an animated counter.
type Stat struct {
	Label  string `yaml:"label"`
	Count  int    `yaml:"count"`
	Suffix string `yaml:"suffix,omitempty"`
}

// CardPath returns the selector path of the i-th card of s, "<section>/<card>".
// Cards without an ID are addressed by index.
func (s Section) CardPath(i int) string {
	id := s.Cards[i].ID
	if id == "" {
		id = strconv.Itoa(i)
	}
	return s.ID + "/" + id
}

// Searchable returns the lower-cased text a search query is matched against.
func (c Card) Searchable() string {
	parts := append([]string{c.Title, c.Subtitle, c.Body}, c.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Section returns the section with the given id.
func (p *Portfolio) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Default returns the embedded sample portfolio.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultContent)
	if err != nil {
		return nil, fmt.Errorf("parse embedded content: %w", err)
	}
	return p, nil
}

// Parse decodes a portfolio document. Unknown keys are rejected.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a portfolio from path. An empty path loads the embedded default.
// A missing file is an error.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("content file %q does not exist", path)
		}
		return nil, fmt.Errorf("read content file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}
	return p, nil
}

// Marshal encodes p as YAML.
func Marshal(p *Portfolio) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
