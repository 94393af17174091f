// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package usage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/slidekit/pkg/types"
)

// criticalUses is the occurrence count above which an image is flagged
// for centralisation.
const criticalUses = 5

// Report is the full analysis of a Table.
type Report struct {
	Prefix      string           `json:"prefix" yaml:"prefix"`
	Summary     Summary          `json:"summary" yaml:"summary"`
	MostUsed    []ImageUsage     `json:"most_used" yaml:"most_used"`
	Duplicates  []DuplicateGroup `json:"duplicates" yaml:"duplicates"`
	Commands    []CommandCount   `json:"commands" yaml:"commands"`
	Files       []FileBreakdown  `json:"files" yaml:"files"`
	Suggestions Suggestions      `json:"suggestions" yaml:"suggestions"`
}

// Summary holds the headline counts.
type Summary struct {
	TotalReferences int     `json:"total_references" yaml:"total_references"`
	UniqueImages    int     `json:"unique_images" yaml:"unique_images"`
	AveragePerImage float64 `json:"average_per_image" yaml:"average_per_image"`
}

// DuplicateGroup holds the images that share one occurrence count.
type DuplicateGroup struct {
	Uses   int          `json:"uses" yaml:"uses"`
	Images []ImageUsage `json:"images" yaml:"images"`
}

// CommandCount is the number of image references made by one command.
type CommandCount struct {
	Command string `json:"command" yaml:"command"`
	Count   int    `json:"count" yaml:"count"`
}

// FileBreakdown lists the references of one document.
type FileBreakdown struct {
	File       string          `json:"file" yaml:"file"`
	References []FileReference `json:"references" yaml:"references"`
}

// FileReference is one reference annotated with the image's total uses.
type FileReference struct {
	Command string `json:"command" yaml:"command"`
	Image   string `json:"image" yaml:"image"`
	Uses    int    `json:"uses" yaml:"uses"`
}

// Unique reports whether the referenced image is used only once overall.
func (r FileReference) Unique() bool { return r.Uses == 1 }

// Suggestions holds the optimisation hints.
type Suggestions struct {
	Critical       []ImageUsage     `json:"critical" yaml:"critical"`
	CategoryImages []CategoryImages `json:"category_images" yaml:"category_images"`
	CrossCategory  []CrossCategory  `json:"cross_category,omitempty" yaml:"cross_category,omitempty"`
	FigsDir        string           `json:"figs_dir" yaml:"figs_dir"`
	FigsDirFound   bool             `json:"figs_dir_found" yaml:"figs_dir_found"`
	Unused         []string         `json:"unused,omitempty" yaml:"unused,omitempty"`
}

// CategoryImages is the number of distinct images used by one category.
type CategoryImages struct {
	Category types.ImageCategory `json:"category" yaml:"category"`
	Images   int                 `json:"images" yaml:"images"`
}

// CrossCategory is an image placed by commands of more than one category.
type CrossCategory struct {
	Image      string                `json:"image" yaml:"image"`
	Categories []types.ImageCategory `json:"categories" yaml:"categories"`
}

// Analyze computes the report for t. cfg.FigsDir is listed to find images
// that no document references; a missing directory is reported, not an error.
func Analyze(t *Table, cfg types.ImagesConfig) (Report, error) {
	scan := cfg.ScanConfig.WithDefaults()
	topN := cfg.TopN
	if topN <= 0 {
		topN = types.DefaultTopN
	}

	images := t.Images()
	r := Report{
		Prefix: scan.FigsPrefix,
		Summary: Summary{
			TotalReferences: t.TotalReferences(),
			UniqueImages:    t.UniqueImages(),
		},
	}
	if r.Summary.UniqueImages > 0 {
		r.Summary.AveragePerImage = float64(r.Summary.TotalReferences) / float64(r.Summary.UniqueImages)
	}

	byCount := byCountDesc(images)
	if len(byCount) > topN {
		r.MostUsed = byCount[:topN]
	} else {
		r.MostUsed = byCount
	}

	r.Duplicates = duplicateGroups(images)
	r.Commands = commandCounts(images)
	r.Files = fileBreakdowns(t)

	for _, u := range byCount {
		if u.Count() > criticalUses {
			r.Suggestions.Critical = append(r.Suggestions.Critical, u)
		}
	}
	r.Suggestions.CategoryImages, r.Suggestions.CrossCategory = categoryUsage(images)

	figsDir := cfg.FigsDir
	if figsDir == "" {
		figsDir = defaultFigsDir(scan)
	}
	r.Suggestions.FigsDir = figsDir
	unused, found, err := UnusedImages(figsDir, t)
	if err != nil {
		return r, err
	}
	r.Suggestions.FigsDirFound = found
	r.Suggestions.Unused = unused

	return r, nil
}

// UnusedImages lists the files directly inside figsDir that no document
// references, sorted by name. found is false when figsDir does not exist.
func UnusedImages(figsDir string, t *Table) (unused []string, found bool, err error) {
	entries, err := os.ReadDir(figsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading figures directory %s: %w", figsDir, err)
	}

	// ReadDir sorts by name, so unused comes out sorted.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, used := t.images[entry.Name()]; !used {
			unused = append(unused, entry.Name())
		}
	}
	return unused, true, nil
}

// defaultFigsDir is the figures directory inside the slides directory.
func defaultFigsDir(scan types.ScanConfig) string {
	return filepath.Join(scan.SlidesDir, scan.FigsPrefix)
}

// byCountDesc orders images by occurrence count, highest first, keeping
// first-seen order among equal counts.
func byCountDesc(images []ImageUsage) []ImageUsage {
	out := make([]ImageUsage, len(images))
	copy(out, images)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count() > out[j].Count()
	})
	return out
}

func duplicateGroups(images []ImageUsage) []DuplicateGroup {
	groups := make(map[int][]ImageUsage)
	for _, u := range images {
		if u.Count() > 1 {
			groups[u.Count()] = append(groups[u.Count()], sortedOccurrences(u))
		}
	}

	counts := make([]int, 0, len(groups))
	for c := range groups {
		counts = append(counts, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	out := make([]DuplicateGroup, len(counts))
	for i, c := range counts {
		group := groups[c]
		sort.Slice(group, func(a, b int) bool { return group[a].Image < group[b].Image })
		out[i] = DuplicateGroup{Uses: c, Images: group}
	}
	return out
}

func sortedOccurrences(u ImageUsage) ImageUsage {
	occ := make([]Occurrence, len(u.Occurrences))
	copy(occ, u.Occurrences)
	sort.Slice(occ, func(i, j int) bool {
		if occ[i].Document != occ[j].Document {
			return occ[i].Document < occ[j].Document
		}
		return occ[i].Command < occ[j].Command
	})
	return ImageUsage{Image: u.Image, Occurrences: occ}
}

// commandCounts counts references per command, highest first; ties keep
// the order in which commands were first seen.
func commandCounts(images []ImageUsage) []CommandCount {
	index := make(map[string]int)
	var out []CommandCount
	for _, u := range images {
		for _, o := range u.Occurrences {
			i, ok := index[o.Command]
			if !ok {
				i = len(out)
				index[o.Command] = i
				out = append(out, CommandCount{Command: o.Command})
			}
			out[i].Count++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func fileBreakdowns(t *Table) []FileBreakdown {
	docs := make([]types.Document, len(t.docs))
	copy(docs, t.docs)
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	var out []FileBreakdown
	for _, doc := range docs {
		if len(doc.Images) == 0 {
			continue
		}
		fb := FileBreakdown{File: doc.Name}
		for _, ref := range doc.Images {
			fb.References = append(fb.References, FileReference{
				Command: ref.Command,
				Image:   ref.Image,
				Uses:    t.images[ref.Image].Count(),
			})
		}
		out = append(out, fb)
	}
	return out
}

func categoryUsage(images []ImageUsage) ([]CategoryImages, []CrossCategory) {
	perCategory := make(map[types.ImageCategory]int)
	var cross []CrossCategory

	for _, u := range images {
		seen := make(map[types.ImageCategory]bool)
		for _, o := range u.Occurrences {
			if c, ok := types.CategoryForCommand(o.Command); ok {
				seen[c] = true
			}
		}
		for c := range seen {
			perCategory[c]++
		}
		if len(seen) > 1 {
			cc := CrossCategory{Image: u.Image}
			for c := range seen {
				cc.Categories = append(cc.Categories, c)
			}
			sort.Slice(cc.Categories, func(i, j int) bool { return cc.Categories[i] < cc.Categories[j] })
			cross = append(cross, cc)
		}
	}
	sort.Slice(cross, func(i, j int) bool { return cross[i].Image < cross[j].Image })

	counts := make([]CategoryImages, len(types.Categories))
	for i, c := range types.Categories {
		counts[i] = CategoryImages{Category: c, Images: perCategory[c]}
	}
	return counts, cross
}
