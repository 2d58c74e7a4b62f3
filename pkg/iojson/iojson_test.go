package iojson

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Label string   `json:"label"`
	Size  *float64 `json:"size,omitempty"`
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"label":"A","size":3},{"label":"B"}]`), 0o644))

	fr := &FileReader[[]point]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Label)
	require.NotNil(t, got[0].Size)
	assert.Equal(t, 3.0, *got[0].Size)
	assert.Nil(t, got[1].Size)
	assert.Equal(t, path, fr.Source())
}

func TestFileReader_Stdin(t *testing.T) {
	fr := &FileReader[[]point]{Stdin: strings.NewReader(`[{"label":"C"}]`)}

	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []point{{Label: "C"}}, got)
	assert.Equal(t, "stdin", fr.Source())
}

func TestFileReader_Errors(t *testing.T) {
	fr := &FileReader[[]point]{fileFlagValue: filepath.Join(t.TempDir(), "missing.json")}
	_, err := fr.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open file")

	fr = &FileReader[[]point]{Stdin: strings.NewReader(`{not json`)}
	_, err = fr.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode JSON")
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, point{Label: "A"}))
	require.NoError(t, WriteLine(&buf, point{Label: "B"}))

	assert.Equal(t, "{\"label\":\"A\"}\n{\"label\":\"B\"}\n", buf.String())
}

func TestWriteWith_MarshalError(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, math.Inf(1)))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}
