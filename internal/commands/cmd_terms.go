package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type TermsCmd struct {
	flags *Flags

	// flags
	gemeente   bool
	jsonOutput bool
}

// NewTermsCmd creates a new terms command
func NewTermsCmd(flags *Flags) *TermsCmd {
	return &TermsCmd{flags: flags}
}

// Register adds the terms command to the application
func (cmd *TermsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "terms",
		Usage:     "Parse search box input into terms",
		UsageText: "viewxy terms [--gemeente] [--json] <input>",
		Description: `Splits the raw input on commas, trims and upper-cases every piece and
drops the empty ones. Prints one term per line.

Multiple arguments are joined with a space first, so quoting is optional.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "gemeente",
				Usage:       "parse as gemeente filter input",
				Destination: &cmd.gemeente,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as a JSON array",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TermsCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "terms")

	raw := strings.Join(c.Args().Slice(), " ")

	var terms []string
	if cmd.gemeente {
		terms = scatter.ParseGemeenteFilter(raw)
	} else {
		terms = scatter.ParseSearchTerms(raw)
	}

	logger.Debug().Ctx(ctx).Int("terms", len(terms)).Bool("gemeente", cmd.gemeente).Msg("parsed terms")

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteLine(out, terms)
	}

	for _, t := range terms {
		if _, err := fmt.Fprintln(out, t); err != nil {
			return err
		}
	}
	return nil
}
