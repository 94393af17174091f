// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"regexp"

	"github.com/pdiddy/slidekit/pkg/types"
)

// ImageMatcher finds image commands whose argument starts with a fixed
// figures prefix, e.g. \outlinepage{FIGS-slides-admin/map.jpg}.
type ImageMatcher struct {
	refs       *regexp.Regexp
	categories *regexp.Regexp
}

// NewImageMatcher compiles the patterns for the given figures prefix.
func NewImageMatcher(prefix string) *ImageMatcher {
	quoted := regexp.QuoteMeta(prefix)

	var alts string
	for i, c := range types.Categories {
		if i > 0 {
			alts += "|"
		}
		alts += regexp.QuoteMeta(c.Command())
	}

	return &ImageMatcher{
		refs:       regexp.MustCompile(`\\(\w+)\{` + quoted + `/([^}]+)\}`),
		categories: regexp.MustCompile(`\\(` + alts + `)\{` + quoted + `/`),
	}
}

// Refs returns every image reference in content, in document order.
func (m *ImageMatcher) Refs(content string) []types.ImageRef {
	matches := m.refs.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]types.ImageRef, len(matches))
	for i, match := range matches {
		refs[i] = types.ImageRef{Command: match[1], Image: match[2]}
	}
	return refs
}

// CategoryCounts counts the slide-image commands of each category in
// content. Every category is present in the result, possibly with zero.
func (m *ImageMatcher) CategoryCounts(content string) types.CategoryCounts {
	counts := make(types.CategoryCounts, len(types.Categories))
	for _, c := range types.Categories {
		counts[c] = 0
	}
	for _, match := range m.categories.FindAllStringSubmatch(content, -1) {
		if c, ok := types.CategoryForCommand(match[1]); ok {
			counts[c]++
		}
	}
	return counts
}
