// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed styles.yaml
var defaultStylesYAML []byte

// Topic links title words to image keywords and artistic styles.
type Topic struct {
	Match    []string `yaml:"match"`
	Keywords []string `yaml:"keywords"`
	Styles   []string `yaml:"styles"`
}

// StyleTable is the curated lookup from lecture titles to prompt hints.
type StyleTable struct {
	Topics          []Topic  `yaml:"topics"`
	DefaultKeywords []string `yaml:"default_keywords"`
	DefaultStyles   []string `yaml:"default_styles"`
}

// DefaultStyleTable returns the built-in table.
func DefaultStyleTable() *StyleTable {
	t, err := ParseStyleTable(defaultStylesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded styles.yaml: %v", err))
	}
	return t
}

// LoadStyleTable reads a table from a YAML file with the layout of the
// built-in styles.yaml.
func LoadStyleTable(path string) (*StyleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style table: %w", err)
	}
	t, err := ParseStyleTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseStyleTable decodes and validates a YAML style table.
func ParseStyleTable(data []byte) (*StyleTable, error) {
	var t StyleTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing style table: %w", err)
	}
	if len(t.DefaultKeywords) == 0 || len(t.DefaultStyles) == 0 {
		return nil, errors.New("style table needs default_keywords and default_styles")
	}
	for i, topic := range t.Topics {
		if len(topic.Match) == 0 {
			return nil, fmt.Errorf("topic %d has no match words", i+1)
		}
	}
	return &t, nil
}

// Lookup returns the keywords and styles for a lecture title. Match words
// are compared as substrings of the lower-cased title, so "sir" also
// matches "desire". Defaults apply when nothing matches.
func (t *StyleTable) Lookup(title string) (keywords, styles []string) {
	lower := strings.ToLower(title)
	for _, topic := range t.Topics {
		if !containsAny(lower, topic.Match) {
			continue
		}
		keywords = append(keywords, topic.Keywords...)
		styles = append(styles, topic.Styles...)
	}
	if len(keywords) == 0 {
		keywords = t.DefaultKeywords
	}
	if len(styles) == 0 {
		styles = t.DefaultStyles
	}
	return keywords, styles
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
