package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp builds the viewxy root command with its global flags and every
// subcommand registered. Lifecycle hooks are left to the caller.
func NewApp(flags *Flags) *cli.Command {
	app := &cli.Command{
		Name:      "viewxy",
		Usage:     "Search, highlight, color and size points of the schools scatter plot",
		UsageText: "viewxy [global options] command [command options]",
		Description: `viewxy exposes the logic behind the schools scatter plot on the command
line: parsing search and gemeente filter input, matching points, finding
highlight ranges in school names, deriving gemeente colors and scaling
sizes to marker radii.

Commands that take points read a JSON array of {label, brin, gemeente,
postcode, size} objects from --file or from piped stdin.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("VIEWXY_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("VIEWXY_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("VIEWXY_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	app = NewTermsCmd(flags).Register(app)
	app = NewMatchCmd(flags).Register(app)
	app = NewFilterCmd(flags).Register(app)
	app = NewHighlightCmd(flags).Register(app)
	app = NewHashCmd(flags).Register(app)
	app = NewColorCmd(flags).Register(app)
	app = NewRadiusCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewDocCmd(flags).Register(app)

	return app
}
