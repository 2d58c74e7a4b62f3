package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/alleschools/viewxy/internal/core/logging"
	"github.com/alleschools/viewxy/internal/core/styles"
	"github.com/alleschools/viewxy/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "viewxy config validate [options]",
				Description: "Loads the configuration file and checks the theme name, highlight colors and swatch width.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationError is one field failure in the JSON report.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, logger := logging.Command(ctx, "config validate")

	cfg := cmd.flags.loadedConfig()
	errs, err := fieldErrors(cfg.Validate())
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).Str("path", cmd.flags.ConfigPath).Int("errors", len(errs)).Msg("config validated")

	out := c.Root().Writer

	if cmd.format == "json" {
		report := struct {
			Valid  bool              `json:"valid"`
			Path   string            `json:"path,omitempty"`
			Errors []validationError `json:"errors,omitempty"`
		}{
			Valid:  len(errs) == 0,
			Path:   cmd.flags.ConfigPath,
			Errors: errs,
		}
		if err := iojson.WriteWith(out, c.Root().ErrWriter, report); err != nil {
			return err
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d error(s) found", len(errs))
		}
		return nil
	}

	st, err := themeStyles(cfg)
	if err != nil {
		// an unknown theme is already one of errs
		logger.Debug().Ctx(ctx).Err(err).Msg("printing report without theme")
		st = styles.Unstyled()
	}

	if len(errs) == 0 {
		_, _ = fmt.Fprintln(out, st.Header.Render("Configuration is valid"))
		return nil
	}

	for _, e := range errs {
		_, _ = fmt.Fprintf(out, "%s: %s\n", st.Error.Render(e.Field), st.Muted.Render(e.Message))
	}
	return fmt.Errorf("%d error(s) found", len(errs))
}

// fieldErrors flattens a validation error into per-field entries.
func fieldErrors(err error) ([]validationError, error) {
	if err == nil {
		return nil, nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return nil, err
	}

	out := make([]validationError, 0, len(fe))
	for _, f := range fe {
		out = append(out, validationError{Field: f.Field, Message: f.Err.Error()})
	}
	return out, nil
}
