package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

type DocCmd struct {
	flags *Flags
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Reference documentation",
		Description: `Prints reference documentation for viewxy.

Use 'viewxy doc input' to see the points JSON format.
Use 'viewxy doc config' to see the configuration file format.`,
		Commands: []*cli.Command{
			{
				Name:   "input",
				Usage:  "Show the points JSON format",
				Action: cmd.runInput,
			},
			{
				Name:   "config",
				Usage:  "Show the configuration file format",
				Action: cmd.runConfig,
			},
		},
	})
	return app
}

func (cmd *DocCmd) runInput(_ context.Context, c *cli.Command) error {
	printInputGuide(c.Root().Writer)
	return nil
}

func (cmd *DocCmd) runConfig(_ context.Context, c *cli.Command) error {
	printConfigGuide(c.Root().Writer, cmd.flags.ConfigPath)
	return nil
}

func printInputGuide(w io.Writer) {
	guide := `# Points Input

The match, filter and radius commands read a JSON array of points from
` + "`--file`" + ` or from piped stdin:

` + "```json" + `
[
  {"label": "Amsterdam School", "brin": "01AB00", "gemeente": "Amsterdam", "postcode": "1011 AB", "size": 120},
  {"label": "Haags Lyceum", "gemeente": "'s-Gravenhage"}
]
` + "```" + `

Every field is optional. Points exported by the data pipeline can be used
as they are: ` + "`name`" + `, ` + "`municipality`" + ` and ` + "`pc4`" + ` are read as
` + "`label`" + `, ` + "`gemeente`" + ` and ` + "`postcode`" + ` when those are missing.
Other fields are ignored.

| Field | Used by |
|-------|---------|
| ` + "`label`" + ` | search matching, highlight |
| ` + "`brin`" + ` | search matching |
| ` + "`gemeente`" + ` | search matching, gemeente filter, color |
| ` + "`postcode`" + ` | search matching, whitespace ignored |
| ` + "`size`" + ` | radius scaling, missing or <= 0 gives radius 8 |

## Search Input

Search and filter input is a comma separated list. Pieces are trimmed and
compared case-insensitively as substrings:

` + "```bash" + `
viewxy match -f points.json --search "ams, 2511 aa"
viewxy filter -f points.json --gemeente "gra,zoe"
` + "```" + `
`
	_, _ = fmt.Fprintln(w, guide)
}

func printConfigGuide(w io.Writer, path string) {
	guide := `# Configuration

Path: ` + path + `

` + "```yaml" + `
# tokyo-night, gruvbox or catppuccin-latte
theme: tokyo-night

highlight:
  foreground: "#1a1b26"  # optional, defaults to the theme background
  background: "#e0af68"  # optional, defaults to the theme warning color
  bold: true

swatch:
  width: 4               # 1 to 32 cells
` + "```" + `

Run ` + "`viewxy config validate`" + ` to check the file.
`
	_, _ = fmt.Fprintln(w, guide)
}
