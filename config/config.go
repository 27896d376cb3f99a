// Package config loads lvldiagram settings from YAML documents.
//
// A document looks like:
//
//	maintain_edge_parent: true
//	create_ids: true
//	log_level: debug
//	builder:
//	  cell_width: 80
//	  cell_height: 40
//	  spacing: 40
//	  labels: excel
//	  seed: 7
//	  vertex_style: rounded
//	  edge_style: orthogonal
//	  lane_style: swimlane
//
// Keys that are absent keep their Default value; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvldiagram/builder"
	"github.com/katalvlaran/lvldiagram/internal/logging"
	"github.com/katalvlaran/lvldiagram/model"
)

// ErrInvalidConfig indicates a document that cannot be decoded or holds
// out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Settings is the decoded configuration.
type Settings struct {
	MaintainEdgeParent bool    `json:"maintain_edge_parent" yaml:"maintain_edge_parent" mapstructure:"maintain_edge_parent"`
	CreateIDs          bool    `json:"create_ids" yaml:"create_ids" mapstructure:"create_ids"`
	LogLevel           string  `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Builder            Builder `json:"builder" yaml:"builder" mapstructure:"builder"`
}

// Builder configures fixture construction.
type Builder struct {
	CellWidth   float64 `json:"cell_width" yaml:"cell_width" mapstructure:"cell_width"`
	CellHeight  float64 `json:"cell_height" yaml:"cell_height" mapstructure:"cell_height"`
	Spacing     float64 `json:"spacing" yaml:"spacing" mapstructure:"spacing"`
	Labels      string  `json:"labels" yaml:"labels" mapstructure:"labels"`
	Seed        *int64  `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
	VertexStyle string  `json:"vertex_style" yaml:"vertex_style" mapstructure:"vertex_style"`
	EdgeStyle   string  `json:"edge_style" yaml:"edge_style" mapstructure:"edge_style"`
	LaneStyle   string  `json:"lane_style" yaml:"lane_style" mapstructure:"lane_style"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		MaintainEdgeParent: true,
		CreateIDs:          true,
		LogLevel:           logging.DefaultLevel,
		Builder: Builder{
			CellWidth:  80,
			CellHeight: 40,
			Spacing:    40,
			Labels:     "decimal",
			LaneStyle:  "swimlane",
		},
	}
}

// Load reads a YAML document from r and decodes it over Default.
// An empty document yields Default.
func Load(r io.Reader) (Settings, error) {
	raw := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Decode(raw)
}

// Decode applies raw over Default and validates the result.
func Decode(raw map[string]any) (Settings, error) {
	s := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = dec.Decode(raw); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks value ranges and names.
func (s Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s.LogLevel)
	}
	b := s.Builder
	if b.CellWidth <= 0 || b.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %gx%g must be positive", ErrInvalidConfig, b.CellWidth, b.CellHeight)
	}
	if b.Spacing < 0 {
		return fmt.Errorf("%w: spacing %g is negative", ErrInvalidConfig, b.Spacing)
	}
	if _, err := builder.LabelSchemeByName(b.Labels); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Logger builds a logger writing to w at the configured level.
func (s Settings) Logger(w io.Writer) (zerolog.Logger, error) {
	return logging.New(w, s.LogLevel)
}

// ModelOptions returns the model options for s, logging through l.
func (s Settings) ModelOptions(l zerolog.Logger) []model.Option {
	return []model.Option{
		model.WithMaintainEdgeParent(s.MaintainEdgeParent),
		model.WithCreateIDs(s.CreateIDs),
		model.WithLogger(l),
	}
}

// BuilderOptions returns the builder options for s after validating it.
func (s Settings) BuilderOptions() ([]builder.BuilderOption, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := s.Builder
	labels, _ := builder.LabelSchemeByName(b.Labels)
	opts := []builder.BuilderOption{
		builder.WithLabelScheme(labels),
		builder.WithCellSize(b.CellWidth, b.CellHeight),
		builder.WithSpacing(b.Spacing),
		builder.WithVertexStyle(b.VertexStyle),
		builder.WithEdgeStyle(b.EdgeStyle),
		builder.WithLaneStyle(b.LaneStyle),
	}
	if b.Seed != nil {
		opts = append(opts, builder.WithSeed(*b.Seed))
	}

	return opts, nil
}
