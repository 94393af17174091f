package types

// ScanConfig holds settings shared by every stage that reads slide sources.
type ScanConfig struct {
	// SlidesDir is the directory holding the slide-source files (default "SLIDES").
	SlidesDir string `json:"slides_dir" yaml:"slides_dir"`

	// Extension is the slide-source file extension including the dot (default ".Rnw").
	Extension string `json:"extension" yaml:"extension"`

	// FigsPrefix is the directory prefix that marks managed images
	// inside image commands (default "FIGS-slides-admin").
	FigsPrefix string `json:"figs_prefix" yaml:"figs_prefix"`

	// LectureScanLines is how many leading lines are searched for the
	// lecture_number annotation (default 20).
	LectureScanLines int `json:"lecture_scan_lines" yaml:"lecture_scan_lines"`
}

// TitlesConfig holds settings for the titles CSV export.
type TitlesConfig struct {
	ScanConfig `yaml:",inline"`

	// DataDir is the directory the CSV is written into (default "_data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Output is the CSV filename inside DataDir (default "slides_info.csv").
	Output string `json:"output" yaml:"output"`
}

// ImagesConfig holds settings for the image usage report.
type ImagesConfig struct {
	ScanConfig `yaml:",inline"`

	// FigsDir is the on-disk image directory compared against references
	// to find unused files (default SlidesDir/FigsPrefix).
	FigsDir string `json:"figs_dir" yaml:"figs_dir"`

	// TopN is the number of most-referenced images listed (default 10).
	TopN int `json:"top_n" yaml:"top_n"`
}

// PromptsConfig holds settings for the prompt generator.
type PromptsConfig struct {
	ScanConfig `yaml:",inline"`

	// FilePattern selects lecture files inside SlidesDir (default "L*" + Extension).
	FilePattern string `json:"file_pattern" yaml:"file_pattern"`

	// Subject is the course subject named in every prompt
	// (default "mathematical epidemiology").
	Subject string `json:"subject" yaml:"subject"`

	// StylesFile optionally replaces the built-in topic/style table.
	StylesFile string `json:"styles_file,omitempty" yaml:"styles_file,omitempty"`

	// Plain drops emoji markers from prompt headings.
	Plain bool `json:"plain" yaml:"plain"`
}

const (
	DefaultSlidesDir        = "SLIDES"
	DefaultExtension        = ".Rnw"
	DefaultFigsPrefix       = "FIGS-slides-admin"
	DefaultLectureScanLines = 20
	DefaultDataDir          = "_data"
	DefaultTitlesOutput     = "slides_info.csv"
	DefaultTopN             = 10
	DefaultSubject          = "mathematical epidemiology"
)

// WithDefaults fills zero-valued fields with their defaults.
func (c ScanConfig) WithDefaults() ScanConfig {
	if c.SlidesDir == "" {
		c.SlidesDir = DefaultSlidesDir
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.FigsPrefix == "" {
		c.FigsPrefix = DefaultFigsPrefix
	}
	if c.LectureScanLines <= 0 {
		c.LectureScanLines = DefaultLectureScanLines
	}
	return c
}
