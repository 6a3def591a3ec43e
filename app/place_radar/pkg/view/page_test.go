package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestNewPage(t *testing.T) {
	p, err := NewPage()
	require.NoError(t, err)

	require.NotNil(t, p.Results())
	assert.Equal(t, "div", p.Results().Data)
	assert.Nil(t, p.Results().FirstChild)
	assert.NotNil(t, FindByID(p.doc, FormID))
}

func TestPage_IndependentDocuments(t *testing.T) {
	a, err := NewPage()
	require.NoError(t, err)
	b, err := NewPage()
	require.NoError(t, err)

	a.Results().AppendChild(&html.Node{Type: html.TextNode, Data: "only in a"})

	var sb strings.Builder
	require.NoError(t, b.Render(&sb))
	assert.NotContains(t, sb.String(), "only in a")
}

func TestPage_SetQueryAndRender(t *testing.T) {
	p, err := NewPage()
	require.NoError(t, err)

	p.SetQuery(`cafes "near" <pier>`)
	p.SetQuery("parks in SF")
	p.Results().AppendChild(&html.Node{Type: html.TextNode, Data: "An error occurred: HTTP error! status: 500"})

	var sb strings.Builder
	require.NoError(t, p.Render(&sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `value="parks in SF"`)
	assert.NotContains(t, out, "pier")
	assert.Contains(t, out, `<div id="results">An error occurred: HTTP error! status: 500</div>`)
	assert.Contains(t, out, "canvas[data-chart]")
}

func TestFindByID_Missing(t *testing.T) {
	p, err := NewPage()
	require.NoError(t, err)
	assert.Nil(t, FindByID(p.doc, "nope"))
}
