package config

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/alleschools/viewxy/internal/core/styles"
)

const maxSwatchWidth = 32

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that the configuration is valid. Failures are reported as
// criterio.FieldErrors keyed by the yaml path of the offending field.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("highlight.foreground", c.Highlight.Foreground, optionalHexColor),
		criterio.Run("highlight.background", c.Highlight.Background, optionalHexColor),
		c.validateSwatch(),
	)
}

func (c *Config) validateSwatch() error {
	var errs criterio.FieldErrorsBuilder
	if c.Swatch.Width < 1 || c.Swatch.Width > maxSwatchWidth {
		errs = errs.Append("swatch.width", fmt.Errorf("must be between 1 and %d, got %d", maxSwatchWidth, c.Swatch.Width))
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	names := styles.ThemeNames()
	if !slices.Contains(names, name) {
		return fmt.Errorf("unknown theme %q, available: %v", name, names)
	}
	return nil
}

func optionalHexColor(v string) error {
	if v == "" {
		return nil
	}
	if !hexColorPattern.MatchString(v) {
		return fmt.Errorf("invalid hex color %q", v)
	}
	return nil
}
