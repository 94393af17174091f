//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Slides groups targets that run slidekit against the local collection.
type Slides mg.Namespace

// Titles rebuilds _data/slides_info.csv.
func (Slides) Titles() error {
	mg.Deps(Build)
	return sh.RunV("bin/slidekit", "titles")
}

// Images prints the image usage report.
func (Slides) Images() error {
	mg.Deps(Build)
	return sh.RunV("bin/slidekit", "images")
}

// Prompts prints the image-generation prompts.
func (Slides) Prompts() error {
	mg.Deps(Build)
	return sh.RunV("bin/slidekit", "prompts")
}
