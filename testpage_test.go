package mimic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestPageTypes(t *testing.T) {
	assert.Equal(t, []string{"infinite-scroll", "modal", "search"}, TestPageTypes())
}

func TestGenerateTestPage_UnknownType(t *testing.T) {
	_, err := GenerateTestPage("carousel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component type")
}

func TestGenerateTestPage_Search(t *testing.T) {
	html, err := GenerateTestPage("search")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Live Search - Component Test</title>")
	assert.Contains(t, html, "htmx.org@1.9.10")
	assert.Contains(t, html, "#search-results")
	assert.Contains(t, html, "htmx:configRequest")
	assert.Contains(t, html, "mockServerEnabled")
	assert.Contains(t, html, "logNetworkRequest")

	// All placeholders expanded
	assert.NotContains(t, html, "{component_title}")
	assert.NotContains(t, html, "{mock_server_script}")
	assert.NotContains(t, html, "{result_selector}")
}

func TestGenerateTestPage_AllTypesSelfContained(t *testing.T) {
	for _, typ := range TestPageTypes() {
		t.Run(typ, func(t *testing.T) {
			html, err := GenerateTestPage(typ)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, "Test Controls")
			assert.Contains(t, html, "Network Log")
			assert.Contains(t, html, "clearResults()")
			assert.Contains(t, html, "toggleMockServer()")
		})
	}
}

func TestGenerateTestPage_ModalHasEscapeHandler(t *testing.T) {
	html, err := GenerateTestPage("modal")
	require.NoError(t, err)
	assert.Contains(t, html, "Escape")
	assert.Contains(t, html, "modal-backdrop")
}

func TestWriteTestPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_search.html")
	require.NoError(t, WriteTestPage("search", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Live Search - Component Test")
}

func TestWriteTestPage_UnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.html")
	require.Error(t, WriteTestPage("bogus", path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
