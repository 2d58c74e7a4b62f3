package commands

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type RadiusCmd struct {
	flags  *Flags
	points pointsReader

	// flags
	jsonOutput bool
}

// NewRadiusCmd creates a new radius command
func NewRadiusCmd(flags *Flags) *RadiusCmd {
	return &RadiusCmd{flags: flags}
}

// Register adds the radius command to the application
func (cmd *RadiusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "radius",
		Usage:     "Map point sizes to marker radii",
		UsageText: "viewxy radius [-f points.json] [--json] [<size>...]",
		Description: `Builds the size scale from a JSON array of points: the smallest positive
size maps to radius 4 and the largest to 18. Points without a positive
size, and point sets without any, get radius 8.

With size arguments, prints the radius for each size. Without, prints the
radius of every point as "<radius>\t<label>".`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			cmd.points.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

// radiusInfo is the JSON output format for viewxy radius --json.
type radiusInfo struct {
	Label  string   `json:"label,omitempty"`
	Size   *float64 `json:"size"`
	Radius int      `json:"radius"`
}

func (cmd *RadiusCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "radius")

	sizes, err := parseSizes(c.Args().Slice())
	if err != nil {
		return err
	}

	ctx, points, err := readPoints(ctx, c, &cmd.points, logger)
	if err != nil {
		return err
	}

	scale := scatter.SizeToRadius(points)
	if minS, rng, ok := scale.Bounds(); ok {
		logger.Debug().Ctx(ctx).Float64("min", minS).Float64("range", rng).Msg("size scale built")
	} else {
		logger.Debug().Ctx(ctx).Msg("no positive sizes, using default radius")
	}

	var rows []radiusInfo
	if len(sizes) > 0 {
		for _, s := range sizes {
			rows = append(rows, radiusInfo{Size: &s, Radius: scale.Radius(s)})
		}
	} else {
		for _, p := range points {
			rows = append(rows, radiusInfo{Label: p.Label, Size: p.Size, Radius: scale.RadiusOf(p)})
		}
	}

	out := c.Root().Writer
	for _, row := range rows {
		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode radius: %w", err)
			}
			continue
		}

		if len(sizes) > 0 {
			_, err = fmt.Fprintf(out, "%d\t%s\n", row.Radius, strconv.FormatFloat(*row.Size, 'f', -1, 64))
		} else {
			_, err = fmt.Fprintf(out, "%d\t%s\n", row.Radius, row.Label)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseSizes(args []string) ([]float64, error) {
	sizes := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", a, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid size %q: not a finite number", a)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}
