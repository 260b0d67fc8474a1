package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/dubins/internal/render"
	"honnef.co/go/dubins/internal/scenario"
)

type options struct {
	config      string
	origin      string
	terminus    string
	radius      float64
	turns       string
	course      bool
	angularStep float64
	linearStep  float64
	format      string
	output      string
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "dubins",
		Short: "Build and sample a Dubins path",
		Long: `Build the Curve-Straight-Curve Dubins path between two waypoints for a
fixed turn pair and write its samples.

Without --config, the built-in example scenario is used as the starting
point. Headings are in radians counter-clockwise from the positive x axis,
or with --course, compass courses in degrees.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			return run(cmd, opts, stdout, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML scenario `file`")
	f.StringVar(&opts.origin, "origin", "", "origin as `x,y,heading`")
	f.StringVar(&opts.terminus, "terminus", "", "terminus as `x,y,heading`")
	f.Float64VarP(&opts.radius, "radius", "r", 0, "turn radius")
	f.StringVarP(&opts.turns, "turns", "t", "", "turn pair, such as RL or RSL")
	f.BoolVar(&opts.course, "course", false, "headings and angular step are compass courses in degrees")
	f.Float64Var(&opts.angularStep, "angular-step", 0, "sampling step along arcs")
	f.Float64Var(&opts.linearStep, "linear-step", 0, "sampling step along the straight segment")
	f.StringVarP(&opts.format, "format", "f", string(render.CSV), "output format: csv, json or svg")
	f.StringVarP(&opts.output, "output", "o", "-", "output `file`, - for standard output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log details about the path")

	cmd.AddCommand(newExampleConfigCmd(stdout))
	return cmd
}

func newExampleConfigCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print an example scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scenario.Default().Encode(stdout)
		},
	}
}

// loadScenario starts from the scenario file, or the default scenario, and
// applies the flags that were set.
func loadScenario(cmd *cobra.Command, opts options) (scenario.Scenario, error) {
	s := scenario.Default()
	if opts.config != "" {
		var err error
		s, err = scenario.Load(opts.config)
		if err != nil {
			return scenario.Scenario{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("course") && opts.course != s.Course {
		// The base waypoints and angular step are in the other convention.
		if !f.Changed("origin") || !f.Changed("terminus") {
			return scenario.Scenario{}, fmt.Errorf("--course=%t changes the angle convention of the scenario; give --origin and --terminus as well", opts.course)
		}
		if !f.Changed("angular-step") {
			s.Sampling.AngularStep = 0
		}
		s.Course = opts.course
	}
	if f.Changed("origin") {
		wp, err := parseWaypoint(opts.origin)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("--origin: %w", err)
		}
		s.Origin = wp
	}
	if f.Changed("terminus") {
		wp, err := parseWaypoint(opts.terminus)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("--terminus: %w", err)
		}
		s.Terminus = wp
	}
	if f.Changed("radius") {
		s.Radius = opts.radius
	}
	if f.Changed("turns") {
		s.Turns = opts.turns
	}
	if f.Changed("angular-step") {
		s.Sampling.AngularStep = opts.angularStep
	}
	if f.Changed("linear-step") {
		s.Sampling.LinearStep = opts.linearStep
	}
	return s, s.Validate()
}

func run(cmd *cobra.Command, opts options, stdout io.Writer, logger *slog.Logger) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	s, err := loadScenario(cmd, opts)
	if err != nil {
		return err
	}

	p, err := s.Path()
	if err != nil {
		return err
	}
	angular, linear := s.Steps()
	pts, err := p.Points(angular, linear)
	if err != nil {
		return err
	}
	origin, terminus := p.Origin(), p.Terminus()
	lengths := p.SegmentLengths()
	attrs := []any{
		"type", p.Type(),
		"origin", origin,
		"terminus", terminus,
		"separation", origin.Distance(terminus),
		"radius", p.Radius(),
		"angular_step", angular,
		"linear_step", linear,
		"arc1", lengths[0],
		"straight", lengths[1],
		"arc2", lengths[2],
		"points", len(pts),
	}
	if s.Course {
		attrs = append(attrs, "origin_course", origin.Course(), "terminus_course", terminus.Course())
	}
	logger.Debug("built path", attrs...)
	if !p.HasStraight() {
		logger.Info("path has no straight segment", "type", p.Type())
	}

	if opts.output == "" || opts.output == "-" {
		if err := render.Write(stdout, format, p, pts); err != nil {
			return fmt.Errorf("writing %s: %w", format, err)
		}
		return nil
	}

	fd, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := render.Write(fd, format, p, pts); err != nil {
		fd.Close()
		return fmt.Errorf("writing %s: %w", format, err)
	}
	if err := fd.Close(); err != nil {
		return err
	}
	logger.Debug("wrote output", "file", opts.output, "format", format)
	return nil
}

// parseWaypoint parses "x,y,heading".
func parseWaypoint(s string) (scenario.Waypoint, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return scenario.Waypoint{}, fmt.Errorf("want x,y,heading, got %q", s)
	}
	var v [3]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return scenario.Waypoint{}, err
		}
		v[i] = f
	}
	return scenario.Waypoint{X: v[0], Y: v[1], Heading: v[2]}, nil
}
