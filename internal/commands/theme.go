package commands

import (
	"fmt"

	"github.com/alleschools/viewxy/internal/core/config"
	"github.com/alleschools/viewxy/internal/core/styles"
)

// themeStyles builds the output styles from cfg. cfg is expected to be
// validated already.
func themeStyles(cfg *config.Config) (styles.Styles, error) {
	palette, ok := styles.GetPalette(cfg.Theme)
	if !ok {
		return styles.Styles{}, fmt.Errorf("unknown theme %q", cfg.Theme)
	}

	return styles.New(palette, styles.HighlightOptions{
		Foreground: cfg.Highlight.Foreground,
		Background: cfg.Highlight.Background,
		Bold:       cfg.Highlight.BoldOrDefault(),
	}), nil
}
