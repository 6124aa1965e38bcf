// Package pipeline provides the core diagram pipeline for wedgeplot.
//
// This package implements the complete load → assemble → render pipeline used
// by the CLI. By centralizing this logic, every entry point validates options
// and logs the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a magnet configuration from a TOML file (optional when the
//     caller already holds a [magnet.Config])
//  2. Assemble: Partition, place and mirror sectors into draw primitives
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Mode:    "full",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, magnet.MagnetIV(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
	"github.com/matzehuels/wedgeplot/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = render.DefaultWidth

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// DefaultMode is the default diagram mode.
const DefaultMode = string(diagram.ModeQuadrant)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// Style constants for wedge drawing.
const (
	StyleOutline = "outline"
	StyleFilled  = "filled"
)

// DefaultStyle is the default visual style.
const DefaultStyle = StyleOutline

// Styles lists the supported visual styles.
var Styles = []string{StyleOutline, StyleFilled}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
type Options struct {
	// Assemble options
	Mode          string `json:"mode,omitempty"`
	NoArrows      bool   `json:"no_arrows,omitempty"`
	NoLabels      bool   `json:"no_labels,omitempty"`
	NoBrackets    bool   `json:"no_brackets,omitempty"`
	NoAnnotations bool   `json:"no_annotations,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG only
	NoAxes  bool     `json:"no_axes,omitempty"`
	Title   string   `json:"title,omitempty"`
	Source  string   `json:"source,omitempty"` // recorded in JSON output

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Config is the configuration the diagram was built from.
	Config magnet.Config

	// Diagram is the assembled primitive list.
	Diagram diagram.Diagram

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sectors      int
	Primitives   int
	LoadTime     time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", format, Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "style", style, Styles)
}

// ValidateMode checks that a mode is valid.
func ValidateMode(mode string) error {
	_, err := diagram.ParseMode(mode)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAssemble(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetAssembleDefaults sets default values for assembly.
func (o *Options) SetAssembleDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForAssemble validates and sets defaults for assembly.
func (o *Options) ValidateForAssemble() error {
	o.SetAssembleDefaults()
	return ValidateMode(o.Mode)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "width and scale must be positive")
	}
	return ValidateStyle(o.Style)
}

// AssembleOptions translates the omission flags into diagram options.
func (o *Options) AssembleOptions() []diagram.Option {
	var opts []diagram.Option
	if o.NoArrows {
		opts = append(opts, diagram.WithoutArrows())
	}
	if o.NoLabels {
		opts = append(opts, diagram.WithoutLabels())
	}
	if o.NoBrackets {
		opts = append(opts, diagram.WithoutBrackets())
	}
	if o.NoAnnotations {
		opts = append(opts, diagram.WithoutAnnotations())
	}
	return opts
}
