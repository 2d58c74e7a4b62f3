package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type FilterCmd struct {
	flags  *Flags
	points pointsReader

	// flags
	gemeente string
	count    bool
}

// NewFilterCmd creates a new filter command
func NewFilterCmd(flags *Flags) *FilterCmd {
	return &FilterCmd{flags: flags}
}

// Register adds the filter command to the application
func (cmd *FilterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "filter",
		Usage:     "Print the points whose gemeente matches",
		UsageText: "viewxy filter --gemeente <input> [-f points.json] [--count]",
		Description: `Reads a JSON array of points and keeps those whose gemeente contains any
of the comma separated parts. Points without a gemeente are dropped unless
no parts are given, in which case every point is printed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "gemeente",
				Aliases:     []string{"g"},
				Usage:       "comma separated gemeente parts",
				Destination: &cmd.gemeente,
			},
			&cli.BoolFlag{
				Name:        "count",
				Usage:       "print only the number of remaining points",
				Destination: &cmd.count,
			},
			cmd.points.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FilterCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "filter")

	ctx, points, err := readPoints(ctx, c, &cmd.points, logger)
	if err != nil {
		return err
	}

	parts := scatter.ParseGemeenteFilter(cmd.gemeente)
	kept := scatter.FilterPointsByGemeenteText(points, parts)

	logger.Debug().Ctx(ctx).
		Strs("parts", parts).
		Int("kept", len(kept)).
		Msg("gemeente filter applied")

	return writePoints(c, kept, cmd.count)
}
