package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "search terms", args: []string{"terms", "  ams , zand  "}, want: "AMS\nZAND\n"},
		{name: "unquoted words are joined", args: []string{"terms", "den", "haag,utrecht"}, want: "DEN HAAG\nUTRECHT\n"},
		{name: "gemeente filter", args: []string{"terms", "--gemeente", "gra,zoe,voor"}, want: "GRA\nZOE\nVOOR\n"},
		{name: "empty input", args: []string{"terms", "  "}, want: ""},
		{name: "json", args: []string{"terms", "--json", "a,,b"}, want: "[\"A\",\"B\"]\n"},
		{name: "json empty", args: []string{"terms", "--json"}, want: "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, NewTermsCmd(&Flags{}), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
