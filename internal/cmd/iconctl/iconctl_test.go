package iconctl

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/sunit1986/JioBharatIQ-Server/internal/platform/errors"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
)

func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	root.SetArgs(args)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	err := root.Execute()
	return buf.String(), err
}

func TestRenderWritesStyledSVG(t *testing.T) {
	out, err := executeCommand("render", "ic-add", "--color", "#FF0000")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<svg"))
	require.Contains(t, out, `fill="#FF0000"`)
	require.Contains(t, out, `style="color:#FF0000;width:24px;height:24px"`)
}

func TestRenderUnknownIcon(t *testing.T) {
	out, err := executeCommand("render", "ic_nope")
	require.Error(t, err)
	require.Empty(t, out)
	require.True(t, apperrors.IsCode(err, apperrors.CodeIconNotFound))
	require.Equal(t, "IcNope", apperrors.GetMetadata(err)["key"])
}

func TestRenderJSON(t *testing.T) {
	out, err := executeCommand("render", "ic_time", "--size", "small", "--json")
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, "IcTime", payload["key"])
	require.Contains(t, payload["svg"], "width:16px;height:16px")
}

func TestRenderUsesThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  ink: "#0a0b0c"
sizes:
  base: 20
contexts:
  icon:
    color: ink
    size: base
`), 0o644))

	out, err := executeCommand("render", "ic_add", "--theme", path)
	require.NoError(t, err)
	require.Contains(t, out, `fill="#0a0b0c"`)
	require.Contains(t, out, "width:20px")

	_, err = executeCommand("render", "ic_add", "--theme", filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, apperrors.IsCode(err, apperrors.CodeThemeInvalid))
}

func TestListFiltersCategory(t *testing.T) {
	out, err := executeCommand("list", "--category", "brand")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "KEY")
	require.Contains(t, lines[1], "PsJioMart")
	require.Contains(t, lines[1], "ps_jio_mart")
}

func TestListJSON(t *testing.T) {
	out, err := executeCommand("list", "--json")
	require.NoError(t, err)

	var keys []icons.Key
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.Len(t, keys, len(icons.Unique(icons.Catalog())))
}

func TestSearchPrintsMatches(t *testing.T) {
	out, err := executeCommand("search", "calendar", "--limit", "1")
	require.NoError(t, err)
	require.Contains(t, out, "IcCalendar")
	require.Contains(t, out, "name")
	require.NotContains(t, out, "IcCalendarEvent")
}

func TestSearchSuggestsOnMiss(t *testing.T) {
	out, err := executeCommand("search", "calender")
	require.NoError(t, err)
	require.Contains(t, out, `No icons match "calender"`)
	require.Contains(t, out, "Did you mean: ic_calendar")
}

func TestCatalogPrintsMarkdown(t *testing.T) {
	out, err := executeCommand("catalog")
	require.NoError(t, err)
	require.Equal(t, icons.CatalogMarkdown(), out)
}

func TestExecuteExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, Execute([]string{"render", "ic_add"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "<svg")

	stdout.Reset()
	stderr.Reset()
	require.Equal(t, 1, Execute([]string{"render", "ic_nope"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "icon not found: ic_nope")

	stderr.Reset()
	require.Equal(t, 2, Execute([]string{"render"}, &stdout, &stderr))
	require.NotEmpty(t, stderr.String())
}
