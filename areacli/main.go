// Package areacli implements the shapearea command.
package areacli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/shapearea/lib/log"
	"oss.terrastruct.com/shapearea/lib/shape"
	"oss.terrastruct.com/shapearea/lib/version"
	"oss.terrastruct.com/shapearea/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	jsonFlag, err := ms.Opts.Bool("SHAPEAREA_JSON", "json", "j", false, "print the shape, its dimensions and its area as JSON")
	if err != nil {
		return err
	}
	precisionFlag, err := ms.Opts.Int64("SHAPEAREA_PRECISION", "precision", "p", -1, "number of decimal places to print. -1 prints the shortest exact representation")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
	}
	ctx = log.Named(log.Human(ctx, ms.Stderr, *debugFlag), "shapearea")

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	switch args[0] {
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	case "shapes":
		if len(args) > 1 {
			return xmain.UsageErrorf("shapes subcommand accepts no arguments")
		}
		shapesCmd(ms)
		return nil
	}

	if *precisionFlag < -1 || *precisionFlag > maxPrecision {
		return xmain.UsageErrorf("-p[recision] must be -1 or a number of decimal places up to %d. You provided: %d", maxPrecision, *precisionFlag)
	}

	shapeType, dims, err := parseShapeArgs(args)
	if err != nil {
		return err
	}
	return compute(ctx, ms, shapeType, dims, *jsonFlag, int(*precisionFlag))
}

// float64 carries at most 17 significant decimal digits.
const maxPrecision = 17

type result struct {
	Shape      string    `json:"shape"`
	Dimensions []float64 `json:"dimensions"`
	Area       float64   `json:"area"`
	Right      *bool     `json:"right,omitempty"`
}

func compute(ctx context.Context, ms *xmain.State, shapeType string, dims []float64, asJSON bool, precision int) (err error) {
	defer xdefer.Errorf(&err, "failed to compute area")

	s, err := shape.NewShape(shapeType, dims...)
	if err != nil {
		return err
	}
	area := shape.CalculateArea(s)
	log.Debug(ctx, "computed area",
		slog.F("shape", s.GetType()),
		slog.F("dimensions", shape.Dimensions(s)),
		slog.F("area", area),
	)
	if math.IsInf(area, 0) {
		return fmt.Errorf("area of %v overflows float64", s)
	}

	if !asJSON {
		_, err = fmt.Fprintln(ms.Stdout, strconv.FormatFloat(area, 'f', precision, 64))
		return err
	}

	res := result{
		Shape:      s.GetType(),
		Dimensions: shape.Dimensions(s),
		Area:       round(area, precision),
	}
	if t, ok := s.(shape.Triangle); ok {
		right := t.IsRightTriangle()
		res.Right = &right
	}
	_, err = fmt.Fprintln(ms.Stdout, xjson.MarshalIndent(res))
	return err
}

// parseShapeArgs resolves the shape name and parses its dimensions. Problems
// here are usage errors; geometric validation is left to the shape package.
func parseShapeArgs(args []string) (string, []float64, error) {
	shapeType, ok := lookupShape(args[0])
	if !ok {
		return "", nil, xmain.UsageErrorf("unknown shape %q. The available shapes are:\n%s", args[0], shapesList())
	}

	raw := args[1:]
	if n := shape.Arity(shapeType); len(raw) != n {
		return "", nil, xmain.UsageErrorf("%s takes %d dimensions (%s), got %d", args[0], n, strings.Join(dimensionNames[shapeType], " "), len(raw))
	}

	dims := make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", nil, xmain.UsageErrorf("invalid dimension %q: expected a number", s)
		}
		dims = append(dims, v)
	}
	return shapeType, dims, nil
}

func round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow(10, float64(precision))
	if math.IsInf(v*p, 0) {
		return v
	}
	return math.Round(v*p) / p
}
