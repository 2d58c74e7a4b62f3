package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type pointsReader = iojson.FileReader[[]scatter.Point]

// readPoints decodes the point list for a command. A Reader set on the
// root command (tests, embedding) replaces os.Stdin.
func readPoints(ctx context.Context, c *cli.Command, fr *pointsReader, logger zerolog.Logger) (context.Context, []scatter.Point, error) {
	if r := c.Root().Reader; r != nil && r != os.Stdin {
		fr.Stdin = r
	}

	ctx = logging.WithInput(ctx, fr.Source())

	points, err := fr.Read()
	if err != nil {
		return ctx, nil, fmt.Errorf("read points: %w", err)
	}

	logger.Debug().Ctx(ctx).Int("points", len(points)).Msg("points loaded")
	return ctx, points, nil
}

// writePoints prints points as JSON lines, or only their count.
func writePoints(c *cli.Command, points []scatter.Point, countOnly bool) error {
	out := c.Root().Writer

	if countOnly {
		_, err := fmt.Fprintln(out, len(points))
		return err
	}

	for _, p := range points {
		if err := iojson.WriteLine(out, p); err != nil {
			return fmt.Errorf("encode point: %w", err)
		}
	}
	return nil
}
