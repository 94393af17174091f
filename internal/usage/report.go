// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package usage

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// maxShownUses caps the occurrences listed under each most-used image.
const maxShownUses = 5

// Format selects how a Report is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s. An empty s means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, yaml or json", s)
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatText, "":
		WriteAnalysis(w, r)
		WriteSuggestions(w, r)
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}
}

// WriteAnalysis prints the summary, most-used images, duplicate groups,
// command histogram and per-file breakdown.
func WriteAnalysis(w io.Writer, r Report) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s IMAGE USAGE ANALYSIS\n", strings.ToUpper(r.Prefix))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nSUMMARY:\n")
	fmt.Fprintf(w, "- Total image references: %d\n", r.Summary.TotalReferences)
	fmt.Fprintf(w, "- Unique images used: %d\n", r.Summary.UniqueImages)
	fmt.Fprintf(w, "- Average references per image: %.1f\n", r.Summary.AveragePerImage)

	fmt.Fprintf(w, "\nMOST FREQUENTLY USED IMAGES:\n")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, u := range r.MostUsed {
		fmt.Fprintf(w, "%3d uses: %s\n", u.Count(), u.Image)
		for i, o := range u.Occurrences {
			if i == maxShownUses {
				break
			}
			fmt.Fprintf(w, "     %s: \\%s\n", o.Document, o.Command)
		}
		if u.Count() > maxShownUses {
			fmt.Fprintf(w, "     ... and %d more\n", u.Count()-maxShownUses)
		}
		fmt.Fprintln(w)
	}

	dupCount := 0
	for _, g := range r.Duplicates {
		dupCount += len(g.Images)
	}
	fmt.Fprintf(w, "\nDUPLICATED IMAGES (%d images used multiple times):\n", dupCount)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, g := range r.Duplicates {
		fmt.Fprintf(w, "\n%d USES (%d images):\n", g.Uses, len(g.Images))
		for _, u := range g.Images {
			fmt.Fprintf(w, "  %s\n", u.Image)
			for _, o := range u.Occurrences {
				fmt.Fprintf(w, "    - %s: \\%s\n", o.Document, o.Command)
			}
		}
	}

	fmt.Fprintf(w, "\nCOMMAND TYPE USAGE:\n")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, c := range r.Commands {
		fmt.Fprintf(w, "%-20s: %3d uses\n", c.Command, c.Count)
	}

	fmt.Fprintf(w, "\nFILE-BY-FILE BREAKDOWN:\n")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, f := range r.Files {
		fmt.Fprintf(w, "\n%s (%d references):\n", f.File, len(f.References))
		for _, ref := range f.References {
			status := "UNIQUE"
			if !ref.Unique() {
				status = fmt.Sprintf("SHARED (%d uses)", ref.Uses)
			}
			fmt.Fprintf(w, "  \\%-20s: %-30s [%s]\n", ref.Command, ref.Image, status)
		}
	}
}

// recommendedActions are printed after the computed suggestions.
var recommendedActions = []string{
	"a) Create a common image pool with semantic naming",
	"b) Use one image per slide type (title, outline, section, subsection)",
	"c) Consider thematic consistency within lecture series",
}

// WriteSuggestions prints the optimisation hints and the unused images.
func WriteSuggestions(w io.Writer, r Report) {
	s := r.Suggestions
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "OPTIMIZATION SUGGESTIONS")
	fmt.Fprintln(w, rule)

	if len(s.Critical) > 0 {
		fmt.Fprintf(w, "\n1. MOST CRITICAL DUPLICATIONS (%d+ uses):\n", criticalUses+1)
		fmt.Fprintln(w, "   These images are used very frequently and should be centralized:")
		for _, u := range s.Critical {
			fmt.Fprintf(w, "   - %s (%d uses)\n", u.Image, u.Count())
		}
	}

	fmt.Fprintf(w, "\n2. USAGE BY SLIDE TYPE:\n")
	for _, c := range s.CategoryImages {
		fmt.Fprintf(w, "   - %s: %d different images\n", c.Category.Label(), c.Images)
	}

	if len(s.CrossCategory) > 0 {
		fmt.Fprintf(w, "\n3. IMAGES USED ACROSS MULTIPLE SLIDE TYPES:\n")
		fmt.Fprintln(w, "   Consider using different images for different purposes:")
		for _, cc := range s.CrossCategory {
			names := make([]string, len(cc.Categories))
			for i, c := range cc.Categories {
				names[i] = string(c)
			}
			fmt.Fprintf(w, "   - %s: %s\n", cc.Image, strings.Join(names, ", "))
		}
	}

	fmt.Fprintf(w, "\n4. RECOMMENDED ACTIONS:\n")
	for _, a := range recommendedActions {
		fmt.Fprintf(w, "   %s\n", a)
	}
	fmt.Fprintf(w, "   d) Remove unused images from %s directory\n", r.Prefix)

	switch {
	case !s.FigsDirFound:
		fmt.Fprintf(w, "\n5. %s directory not found at %s\n", r.Prefix, s.FigsDir)
	case len(s.Unused) > 0:
		fmt.Fprintf(w, "\n5. UNUSED IMAGES (%d files):\n", len(s.Unused))
		fmt.Fprintln(w, "   These images can be removed:")
		for _, name := range s.Unused {
			fmt.Fprintf(w, "   - %s\n", name)
		}
	}
}
