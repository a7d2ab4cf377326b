package publish_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/el"
	"github.com/weft-dev/weft/pkg/page"
	"github.com/weft-dev/weft/pkg/publish"
)

func TestDirWriteFile(t *testing.T) {
	d := publish.NewDir(filepath.Join(t.TempDir(), "dist"))

	require.NoError(t, d.WriteFile("index.html", []byte("<p>hi</p>")))
	require.NoError(t, d.WriteFile("css/app.css", []byte("body{}")))

	data, err := os.ReadFile(filepath.Join(d.Root(), "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	data, err = os.ReadFile(filepath.Join(d.Root(), "css", "app.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
}

func TestDirWritePage(t *testing.T) {
	d := publish.NewDir(t.TempDir())

	p := page.Page{
		Title: "Home",
		Body:  el.Main(el.H1("Welcome")),
	}
	require.NoError(t, d.WritePage("index.html", p))

	data, err := os.ReadFile(filepath.Join(d.Root(), "index.html"))
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Home</title>")
	assert.Contains(t, html, "<h1>Welcome</h1>")
}

func TestDirWritePageError(t *testing.T) {
	d := publish.NewDir(t.TempDir())

	p := page.Page{Body: el.Div(el.El("Bad Tag"))}
	require.Error(t, d.WritePage("index.html", p))

	_, err := os.Stat(filepath.Join(d.Root(), "index.html"))
	assert.True(t, os.IsNotExist(err), "nothing should be written for a failing page")
}

func TestDirRejectsEscapingPaths(t *testing.T) {
	d := publish.NewDir(t.TempDir())

	paths := []string{
		"",
		"/etc/passwd",
		"..",
		"../outside.html",
		"a/../../b.html",
		"a\\b.html",
		"a/./b.html",
	}
	for _, rel := range paths {
		err := d.WriteFile(rel, []byte("x"))
		assert.ErrorIs(t, err, publish.ErrInvalidPath, "path %q", rel)
	}
}

func TestDirClean(t *testing.T) {
	d := publish.NewDir(filepath.Join(t.TempDir(), "dist"))
	require.NoError(t, d.WriteFile("stale.html", []byte("old")))

	require.NoError(t, d.Clean())

	entries, err := os.ReadDir(d.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
