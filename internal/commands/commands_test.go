package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
)

const testPoints = `[
  {"label": "Amsterdam School", "brin": "01AB00", "gemeente": "Amsterdam", "postcode": "1011 AB", "size": 10},
  {"label": "Haags Lyceum", "brin": "02QZ00", "gemeente": "'s-Gravenhage", "postcode": "2511AA", "size": 100},
  {"label": "Rotterdams College", "brin": "03XY00", "gemeente": "Rotterdam", "size": 1000},
  {"label": "Zonder Gemeente"}
]`

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

// runCmd registers cmd on a fresh root command and runs it with args,
// feeding stdin to commands that read points.
func runCmd(t *testing.T, cmd registrar, stdin string, args ...string) (string, error) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	var reader io.Reader = strings.NewReader(stdin)

	app := &cli.Command{
		Name:      "viewxy",
		Writer:    &buf,
		ErrWriter: io.Discard,
		Reader:    reader,
	}
	cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"viewxy"}, args...))
	return buf.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
