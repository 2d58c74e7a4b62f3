package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type HighlightCmd struct {
	flags *Flags

	// flags
	search     string
	jsonOutput bool
}

// NewHighlightCmd creates a new highlight command
func NewHighlightCmd(flags *Flags) *HighlightCmd {
	return &HighlightCmd{flags: flags}
}

// Register adds the highlight command to the application
func (cmd *HighlightCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "highlight",
		Usage:     "Show which parts of school names match a search",
		UsageText: "viewxy highlight --search <input> [--json] <label>...",
		Description: `Prints every label with the ranges hit by the search terms styled using
the configured theme. Overlapping and touching hits are merged.

Use --json to print the [start,end) rune offsets instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "comma separated search terms",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output ranges as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// highlightInfo is the JSON output format for viewxy highlight --json.
type highlightInfo struct {
	Label    string            `json:"label"`
	Ranges   []scatter.Range   `json:"ranges"`
	Segments []scatter.Segment `json:"segments"`
}

func (cmd *HighlightCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "highlight")

	terms := scatter.ParseSearchTerms(cmd.search)
	labels := c.Args().Slice()
	logger.Debug().Ctx(ctx).Strs("terms", terms).Int("labels", len(labels)).Msg("highlighting")

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, label := range labels {
			info := highlightInfo{
				Label:    label,
				Ranges:   scatter.GetNameHighlights(label, terms),
				Segments: scatter.HighlightSegments(label, terms),
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode highlight: %w", err)
			}
		}
		return nil
	}

	cfg, err := cmd.flags.validConfig()
	if err != nil {
		return err
	}

	st, err := themeStyles(cfg)
	if err != nil {
		return err
	}

	for _, label := range labels {
		if _, err := fmt.Fprintln(out, st.RenderSegments(scatter.HighlightSegments(label, terms))); err != nil {
			return err
		}
	}
	return nil
}
