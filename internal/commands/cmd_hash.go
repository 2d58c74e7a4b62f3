package commands

import (
	"context"
	"fmt"
	"math"

	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/pkg/iojson"
	"github.com/alleschools/viewxy/pkg/scatter"
)

type HashCmd struct {
	flags *Flags

	// flags
	seed       int
	jsonOutput bool
}

// NewHashCmd creates a new hash command
func NewHashCmd(flags *Flags) *HashCmd {
	return &HashCmd{flags: flags}
}

// Register adds the hash command to the application
func (cmd *HashCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "hash",
		Usage:     "Print the stable hash of strings",
		UsageText: "viewxy hash [--seed N] [--json] <string>...",
		Description: `Prints the case-insensitive 32-bit hash used to derive gemeente colors,
one line per argument as "<hash>\t<string>".`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "seed",
				Usage:       "initial hash value (32-bit signed)",
				Destination: &cmd.seed,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// hashInfo is the JSON output format for viewxy hash --json.
type hashInfo struct {
	Input string `json:"input"`
	Seed  int32  `json:"seed"`
	Hash  uint32 `json:"hash"`
}

func (cmd *HashCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "hash")

	if cmd.seed < math.MinInt32 || cmd.seed > math.MaxInt32 {
		return fmt.Errorf("seed %d out of 32-bit range", cmd.seed)
	}
	seed := int32(cmd.seed)

	args := c.Args().Slice()
	logger.Debug().Ctx(ctx).Int32("seed", seed).Int("inputs", len(args)).Msg("hashing")

	out := c.Root().Writer
	for _, s := range args {
		h := scatter.HashString(s, seed)

		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, hashInfo{Input: s, Seed: seed, Hash: h}); err != nil {
				return fmt.Errorf("encode hash: %w", err)
			}
			continue
		}

		if _, err := fmt.Fprintf(out, "%d\t%s\n", h, s); err != nil {
			return err
		}
	}
	return nil
}
