package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type MatchCmd struct {
	flags  *Flags
	points pointsReader

	// flags
	search string
	count  bool
}

// NewMatchCmd creates a new match command
func NewMatchCmd(flags *Flags) *MatchCmd {
	return &MatchCmd{flags: flags}
}

// Register adds the match command to the application
func (cmd *MatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "match",
		Usage:     "Print the points matching a search",
		UsageText: "viewxy match --search <input> [-f points.json] [--count]",
		Description: `Reads a JSON array of points and prints those matching any search term
as JSON lines. A term matches the name, BRIN or gemeente, or the postcode
with whitespace ignored. An empty search matches every point.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "comma separated search terms",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "count",
				Usage:       "print only the number of matching points",
				Destination: &cmd.count,
			},
			cmd.points.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MatchCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "match")

	ctx, points, err := readPoints(ctx, c, &cmd.points, logger)
	if err != nil {
		return err
	}

	terms := scatter.ParseSearchTerms(cmd.search)

	matched := make([]scatter.Point, 0, len(points))
	for _, p := range points {
		if scatter.PointMatchesSearch(p, terms) {
			matched = append(matched, p)
		}
	}

	logger.Debug().Ctx(ctx).
		Strs("terms", terms).
		Int("matched", len(matched)).
		Msg("search applied")

	return writePoints(c, matched, cmd.count)
}
