package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/reel/internal/ui"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	return runWithEnv(t, nil, args...)
}

func runWithEnv(t *testing.T, env map[string]string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	for _, k := range []string{"REEL_THEME", "REEL_SEED", "REEL_LOG", "REEL_CATEGORY"} {
		t.Setenv(k, env[k])
	}
	var out, errOut bytes.Buffer
	prevOut, prevErr := ui.Stdout, ui.Stderr
	ui.Stderr = &errOut
	t.Cleanup(func() {
		ui.Stdout, ui.Stderr = prevOut, prevErr
		ui.SetColorForcing(false, false)
		ui.SetTheme("classic")
	})
	code = Run(args, &out)
	return code, out.String(), errOut.String()
}

func TestListDefaultCatalog(t *testing.T) {
	code, out, _ := run(t, "ls", "--theme", "mono")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Genre all  Showing 3/3")
	assert.Contains(t, out, "101. The Dream Weaver (2010)  Sci-Fi")
	assert.Contains(t, out, "****. ⭐ Avg Rating: 4.0 / 5 (3 votes)")
	assert.Contains(t, out, "⭐ Avg Rating: 4.8 / 5 (4 votes)")
	assert.Contains(t, out, "⭐ Avg Rating: 3.3 / 5 (3 votes)")
}

func TestListByCategory(t *testing.T) {
	code, out, _ := run(t, "ls", "--theme", "mono", "--category", "Action")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Showing 1/3")
	assert.Contains(t, out, "The Grand Adventure")
	assert.NotContains(t, out, "Silent Witness")

	code, out, _ = run(t, "ls", "--theme", "mono", "--category", "Horror")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "no films")
}

func TestListSeedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "films.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"id": 1, "title": "Quiet Field", "category": "Drama", "year": 1988}]`), 0o644))

	code, out, _ := run(t, "ls", "--theme", "mono", "--seed", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1. Quiet Field (1988)")
	assert.Contains(t, out, "⭐ Avg Rating: 0 / 5 (0 votes)")
}

func TestListDuplicateSeed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "films.yaml")
	require.NoError(t, os.WriteFile(p, []byte("- id: 1\n  title: A\n- id: 1\n  title: B\n"), 0o644))

	code, _, errOut := run(t, "ls", "--seed", p)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "duplicate item id")
}

func TestCategories(t *testing.T) {
	code, out, _ := run(t, "categories")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"all", "Sci-Fi", "Action", "Drama"}, strings.Fields(out))
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := run(t, "ls", "extra")
	assert.Equal(t, 2, code)

	code, _, _ = run(t, "--no-such-flag")
	assert.Equal(t, 2, code)

	code, _, errOut := run(t, "ls", "--theme", "solarized")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown theme")
}

func TestMissingSeed(t *testing.T) {
	code, _, errOut := run(t, "ls", "--seed", filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "load:")
}

func TestLogFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reel.log")
	code, _, _ := run(t, "categories", "-v", "--log", p)
	require.Equal(t, 0, code)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "catalog loaded")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := map[string]string{"REEL_THEME": "solarized"}

	code, out, errOut := runWithEnv(t, env, "ls", "--theme", "mono")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "+---")

	code, _, errOut = runWithEnv(t, env, "ls")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown theme")
}

func TestEnvironmentCategory(t *testing.T) {
	env := map[string]string{"REEL_CATEGORY": "Drama"}

	code, out, _ := runWithEnv(t, env, "ls", "--theme", "mono")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Showing 1/3")

	code, out, _ = runWithEnv(t, env, "ls", "--theme", "mono", "--category", "all")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Showing 3/3")
}

func TestColorFlags(t *testing.T) {
	code, out, _ := run(t, "ls", "--color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\033[")

	code, out, _ = run(t, "ls", "--color", "--no-color")
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "\033[")

	code, _, errOut := run(t, "ls", "--color", "--seed", filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, "\033[31m✖ load:"), errOut)
}

func TestListTruncatesLongTitlesByRune(t *testing.T) {
	// double-width runes: 28 of them fill the 57 columns left before "..."
	title := strings.Repeat("映", 70)
	p := filepath.Join(t.TempDir(), "films.yaml")
	require.NoError(t, os.WriteFile(p, []byte("- id: 1\n  title: "+title+"\n  category: Drama\n"), 0o644))

	code, out, _ := run(t, "ls", "--theme", "mono", "--seed", p)
	require.Equal(t, 0, code)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "1. "+strings.Repeat("映", 28)+"... (0)")
	assert.NotContains(t, out, title)
}
