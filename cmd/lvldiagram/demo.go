package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvldiagram/builder"
	"github.com/katalvlaran/lvldiagram/config"
	"github.com/katalvlaran/lvldiagram/core"
	"github.com/katalvlaran/lvldiagram/metrics"
	"github.com/katalvlaran/lvldiagram/model"
)

var errUnknownShape = errors.New("unknown shape")

var demoCmd = &cobra.Command{
	Use:   "demo [shape]",
	Short: "Build a fixture diagram and print its snapshot",
	Long: `Builds a diagram with one of the fixture shapes, optionally clones it into a
second layer or merges it into a fresh model, and prints the snapshot.

Shapes: ` + strings.Join(shapeNames(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		var o demoOptions
		o.shape, _ = cmd.Flags().GetString("shape")
		if len(args) > 0 {
			o.shape = args[0]
		}
		o.size, _ = cmd.Flags().GetInt("size")
		o.per, _ = cmd.Flags().GetInt("per")
		o.prob, _ = cmd.Flags().GetFloat64("prob")
		o.clone, _ = cmd.Flags().GetBool("clone")
		o.merge, _ = cmd.Flags().GetBool("merge")
		o.metrics, _ = cmd.Flags().GetBool("metrics")
		o.format, _ = cmd.Flags().GetString("format")

		return runDemo(cmd.OutOrStdout(), cmd.ErrOrStderr(), s, o)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("shape", "swimlanes", "Fixture shape")
	demoCmd.Flags().IntP("size", "n", 3, "Main size parameter (vertices, lanes, rows or depth)")
	demoCmd.Flags().Int("per", 3, "Second size parameter (vertices per lane, grid columns)")
	demoCmd.Flags().Float64("prob", 0.3, "Edge probability for the random shape")
	demoCmd.Flags().Bool("clone", false, "Clone the built cells into a second layer")
	demoCmd.Flags().Bool("merge", false, "Merge the diagram into a fresh model and print that one")
	demoCmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the snapshot")
	demoCmd.Flags().StringP("format", "o", "yaml", "Snapshot format: yaml or json")
}

type demoOptions struct {
	shape   string
	size    int
	per     int
	prob    float64
	clone   bool
	merge   bool
	metrics bool
	format  string
}

// shapes maps shape names to constructors.
var shapes = map[string]func(o demoOptions) builder.Constructor{
	"layers":    func(o demoOptions) builder.Constructor { return builder.Layers(o.size) },
	"chain":     func(o demoOptions) builder.Constructor { return builder.Chain(o.size) },
	"cycle":     func(o demoOptions) builder.Constructor { return builder.Cycle(o.size) },
	"star":      func(o demoOptions) builder.Constructor { return builder.Star(o.size) },
	"grid":      func(o demoOptions) builder.Constructor { return builder.Grid(o.size, o.per) },
	"swimlanes": func(o demoOptions) builder.Constructor { return builder.Swimlanes(o.size, o.per) },
	"nested":    func(o demoOptions) builder.Constructor { return builder.Nested(o.size) },
	"random":    func(o demoOptions) builder.Constructor { return builder.RandomSparse(o.size, o.prob) },
}

func shapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func runDemo(out, logOut io.Writer, s config.Settings, o demoOptions) error {
	newCons, ok := shapes[o.shape]
	if !ok {
		return fmt.Errorf("%w %q (one of %s)", errUnknownShape, o.shape, strings.Join(shapeNames(), ", "))
	}
	if o.format != "yaml" && o.format != "json" {
		return fmt.Errorf("unsupported format %q", o.format)
	}
	logger, err := s.Logger(logOut)
	if err != nil {
		return err
	}
	bopts, err := s.BuilderOptions()
	if err != nil {
		return err
	}
	if o.shape == "random" && s.Builder.Seed == nil {
		bopts = append(bopts, builder.WithSeed(1))
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		return err
	}

	m := model.New(s.ModelOptions(logger)...)
	detach := rec.Attach(m)
	defer detach()

	if err = builder.Apply(m, bopts, newCons(o)); err != nil {
		return err
	}
	if o.clone {
		if err = cloneIntoLayer(m); err != nil {
			return fmt.Errorf("clone: %w", err)
		}
	}

	shown := m
	if o.merge {
		shown = model.New(s.ModelOptions(logger)...)
		defer rec.Attach(shown)()
		if err = mergeLayers(shown, m); err != nil {
			return fmt.Errorf("merge: %w", err)
		}
	}
	logger.Info().Str("shape", o.shape).Int("cells", shown.CellCount()).Msg("diagram built")

	if err = writeSnapshot(out, shown.Snapshot(), o.format); err != nil {
		return err
	}
	if o.metrics {
		return writeMetrics(out, reg)
	}

	return nil
}

// cloneIntoLayer copies the default layer's children into a new layer.
func cloneIntoLayer(m *model.Model) error {
	return m.Update(func() error {
		clones, err := m.CloneCells(m.Children(m.DefaultParent()), true)
		if err != nil {
			return err
		}
		layer := m.Store().New()
		if err = m.Add(m.Root(), layer, -1); err != nil {
			return err
		}
		for _, c := range clones {
			if c == core.Nil {
				continue
			}
			if err = m.Add(layer, c, -1); err != nil {
				return err
			}
		}

		return nil
	})
}

// mergeLayers merges every layer of src into the layer of dst at the same
// index, adding layers to dst as needed.
func mergeLayers(dst, src *model.Model) error {
	return dst.Update(func() error {
		for i, from := range src.Children(src.Root()) {
			for dst.ChildCount(dst.Root()) <= i {
				if err := dst.Add(dst.Root(), dst.Store().New(), -1); err != nil {
					return err
				}
			}
			to, err := dst.ChildAt(dst.Root(), i)
			if err != nil {
				return err
			}
			if err = dst.MergeChildren(src, from, to, false); err != nil {
				return err
			}
		}

		return nil
	})
}

func writeSnapshot(w io.Writer, snap *model.Snapshot, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(snap)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}

	return enc.Close()
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
