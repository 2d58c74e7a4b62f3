package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/internal/core/styles"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type ColorCmd struct {
	flags *Flags

	// flags
	border     bool
	jsonOutput bool
}

// NewColorCmd creates a new color command
func NewColorCmd(flags *Flags) *ColorCmd {
	return &ColorCmd{flags: flags}
}

// Register adds the color command to the application
func (cmd *ColorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "color",
		Usage:     "Print the marker colors of gemeenten",
		UsageText: "viewxy color [--border] [--json] <gemeente>...",
		Description: `Prints the CSS fill color (or border color with --border) the scatter plot
uses for each gemeente, next to a terminal swatch. Colors are derived from
the name alone, so a gemeente always gets the same color.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "border",
				Usage:       "print the border color instead of the fill",
				Destination: &cmd.border,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output fill and border as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// colorInfo is the JSON output format for viewxy color --json.
type colorInfo struct {
	Gemeente  string      `json:"gemeente"`
	Fill      string      `json:"fill"`
	Border    string      `json:"border"`
	FillHex   string      `json:"fill_hex"`
	BorderHex string      `json:"border_hex"`
	FillHSL   scatter.HSL `json:"fill_hsl"`
	BorderHSL scatter.HSL `json:"border_hsl"`
}

func (cmd *ColorCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "color")

	names := c.Args().Slice()
	logger.Debug().Ctx(ctx).Int("gemeenten", len(names)).Bool("border", cmd.border).Msg("deriving colors")

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, name := range names {
			fill, border := scatter.GemeenteFill(name), scatter.GemeenteBorder(name)
			info := colorInfo{
				Gemeente:  name,
				Fill:      scatter.GemeenteToColor(name),
				Border:    scatter.GemeenteToBorderColor(name),
				FillHex:   styles.Hex(fill),
				BorderHex: styles.Hex(border),
				FillHSL:   fill,
				BorderHSL: border,
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode color: %w", err)
			}
		}
		return nil
	}

	cfg, err := cmd.flags.validConfig()
	if err != nil {
		return err
	}

	width := cfg.Swatch.Width
	for _, name := range names {
		hsl, css := scatter.GemeenteFill(name), scatter.GemeenteToColor(name)
		if cmd.border {
			hsl, css = scatter.GemeenteBorder(name), scatter.GemeenteToBorderColor(name)
		}

		if _, err := fmt.Fprintf(out, "%s %s\t%s\n", styles.Swatch(hsl, width), css, name); err != nil {
			return err
		}
	}
	return nil
}
