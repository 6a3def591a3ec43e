package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/chart"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

func newContainer() *html.Node {
	return element(atom.Div, html.Attribute{Key: "id", Val: "results"})
}

func decode(t *testing.T, payload string) *model.SearchResponse {
	t.Helper()
	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func inner(t *testing.T, n *html.Node) string {
	t.Helper()
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		require.NoError(t, html.Render(&sb, c))
	}
	return sb.String()
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textOf(c))
	}
	return sb.String()
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestRender_CafeExample(t *testing.T) {
	resp := decode(t, `{"entities":[{"name":"Cafe X","reviews":[{"source":"Yelp","text":"Great","rating":5,"sentiment":"Positive"}]}]}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	blocks := children(container)
	require.Len(t, blocks, 2)
	assert.Equal(t, "entity", attr(blocks[0], "class"))
	assert.Equal(t, "Cafe X", textOf(findAll(blocks[0], atom.H2)[0]))

	rows := findAll(findAll(blocks[1], atom.Tbody)[0], atom.Tr)
	require.Len(t, rows, 1)
	var cells []string
	for _, td := range findAll(rows[0], atom.Td) {
		cells = append(cells, textOf(td))
	}
	assert.Equal(t, []string{"Yelp", "Great (Rating: 5)", "Cafe X", "Positive"}, cells)
}

func TestRender_NoEntities(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"entities": []}`,
		`{"entities": null, "gemini_review": "# Hi", "travel_info": {"distance": "1 mi", "duration": "2 mins"}}`,
	}
	for _, p := range payloads {
		container := newContainer()
		require.NoError(t, NewRenderer().Render(decode(t, p), container))

		nodes := children(container)
		require.Len(t, nodes, 1, p)
		assert.Equal(t, html.TextNode, nodes[0].Type)
		assert.Equal(t, NoResultsText, nodes[0].Data)
		assert.Empty(t, findAll(container, atom.Table))
	}
}

func TestRender_NilResponse(t *testing.T) {
	container := newContainer()
	require.NoError(t, NewRenderer().Render(nil, container))
	assert.Equal(t, NoResultsText, inner(t, container))
}

func TestRender_SectionOrder(t *testing.T) {
	resp := decode(t, `{
		"gemini_review": "**Both** are worth a visit.",
		"travel_info": {"distance": "3.1 mi", "duration": "12 mins"},
		"entities": [
			{"name": "Alpha", "reviews": [{"source": "Google", "text": "a1", "rating": 4, "sentiment": "Positive"}]},
			{"name": "Beta"}
		]
	}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	blocks := children(container)
	require.Len(t, blocks, 5)
	assert.Equal(t, "gemini-review", attr(blocks[0], "class"))
	assert.Contains(t, inner(t, blocks[0]), "<strong>Both</strong>")
	assert.Equal(t, "Travel InformationDistance: 3.1 miDuration: 12 mins", textOf(blocks[1]))
	assert.Equal(t, "Alpha", textOf(findAll(blocks[2], atom.H2)[0]))
	assert.Equal(t, "Beta", textOf(findAll(blocks[3], atom.H2)[0]))
	assert.Equal(t, atom.Table, blocks[4].DataAtom)
}

func TestRender_EntityBlock(t *testing.T) {
	resp := decode(t, `{"entities":[{
		"name": "Golden Gate Park",
		"google_sentiment": {"Highly Positive": 3, "Neutral": 1},
		"reddit_sentiment": {"Negative": 2},
		"weather": {
			"Saturday": {"date": "2024-02-17", "temperature": 65, "description": "Clear sky"},
			"Sunday": {"date": "2024-02-18", "temperature": 62.5, "description": "Partly cloudy"}
		},
		"positive_summary": "Lovely gardens.",
		"negative_summary": "Crowded on weekends."
	}]}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	block := children(container)[0]
	var tags []string
	for _, c := range children(block) {
		tags = append(tags, c.Data)
	}
	assert.Equal(t, []string{"h2", "canvas", "canvas", "h3", "p", "p", "div", "div"}, tags)

	canvases := findAll(block, atom.Canvas)
	assert.Equal(t, chart.SourceGoogle.ID("Golden Gate Park"), attr(canvases[0], "id"))
	assert.Equal(t, chart.SourceReddit.ID("Golden Gate Park"), attr(canvases[1], "id"))

	var cfg chart.Config
	require.NoError(t, json.Unmarshal([]byte(attr(canvases[0], chart.AttrConfig)), &cfg))
	assert.Equal(t, []string{"Highly Positive", "Neutral"}, cfg.Data.Labels)
	assert.Equal(t, []string{"darkgreen", "lightgray"}, cfg.Data.Datasets[0].BackgroundColor)

	ps := findAll(block, atom.P)
	assert.Equal(t, "Saturday: 2024-02-17, 65°F, Clear sky", textOf(ps[0]))
	assert.Equal(t, "Sunday: 2024-02-18, 62.5°F, Partly cloudy", textOf(ps[1]))
	assert.Equal(t, "Weekend Weather", textOf(findAll(block, atom.H3)[0]))

	strongs := findAll(block, atom.Strong)
	assert.Equal(t, "Positive Summary:", textOf(strongs[0]))
	assert.Equal(t, "Positive Summary: Lovely gardens.", textOf(strongs[0].Parent))
	assert.Equal(t, "Negative Summary: Crowded on weekends.", textOf(strongs[1].Parent))
}

func TestRender_OptionalEntityParts(t *testing.T) {
	resp := decode(t, `{"entities":[{"name": "Museum", "weather": {"Sunday": {"date": "2024-02-18", "temperature": 50, "description": "Rain"}}, "positive_summary": ""}]}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	block := children(container)[0]
	var tags []string
	for _, c := range children(block) {
		tags = append(tags, c.Data)
	}
	assert.Equal(t, []string{"h2", "h3", "p"}, tags)
	assert.Equal(t, "Sunday: 2024-02-18, 50°F, Rain", textOf(findAll(block, atom.P)[0]))
}

func TestRender_EmptyWeatherObjectStillRendersHeading(t *testing.T) {
	resp := decode(t, `{"entities":[{"name": "Pier", "weather": {}}]}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	block := children(container)[0]
	assert.Len(t, findAll(block, atom.H3), 1)
	assert.Empty(t, findAll(block, atom.P))
}

func TestRender_MistypedOptionalFieldsAreSkipped(t *testing.T) {
	resp := decode(t, `{"entities":[{
		"name": "Cafe X",
		"google_sentiment": {"Positive": "3"},
		"weather": "unavailable",
		"reviews": [{"source": "Google", "text": "Great", "rating": "5", "sentiment": "Positive"}]
	}]}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	blocks := children(container)
	require.Len(t, blocks, 2)
	block := blocks[0]
	assert.Equal(t, "Cafe X", textOf(findAll(block, atom.H2)[0]))
	assert.Empty(t, findAll(block, atom.H3))

	canvases := findAll(block, atom.Canvas)
	require.Len(t, canvases, 1)
	assert.Equal(t, "google-chart-Cafe X", attr(canvases[0], "id"))
	assert.Contains(t, attr(canvases[0], "data-chart"), `"data":[3]`)

	rows := findAll(findAll(blocks[1], atom.Tbody)[0], atom.Tr)
	require.Len(t, rows, 1)
	assert.Equal(t, "Great (Rating: 5)", textOf(findAll(rows[0], atom.Td)[1]))
}

func TestRender_ClearsPreviousContent(t *testing.T) {
	container := newContainer()
	r := NewRenderer()

	require.NoError(t, r.Render(decode(t, `{"entities":[{"name":"First","reviews":[{"source":"a","text":"b","rating":1,"sentiment":"Neutral"}]}]}`), container))
	require.NoError(t, r.Render(decode(t, `{"entities":[{"name":"Second"}]}`), container))

	out := inner(t, container)
	assert.NotContains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Len(t, findAll(container, atom.Table), 1)
	assert.Empty(t, findAll(findAll(container, atom.Tbody)[0], atom.Tr))
}

func TestRender_EscapesUntrustedText(t *testing.T) {
	resp := decode(t, `{
		"gemini_review": "hello <script>alert(1)</script> <img src=x onerror=alert(2)>",
		"entities":[{"name":"<b>Evil</b>","positive_summary":"<i>x</i>","reviews":[{"source":"s","text":"<script>bad()</script>","rating":null,"sentiment":"Neutral"}]}]
	}`)
	container := newContainer()

	require.NoError(t, NewRenderer().Render(resp, container))

	out := inner(t, container)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
	assert.NotContains(t, out, "<b>Evil</b>")
	assert.Contains(t, out, "&lt;b&gt;Evil&lt;/b&gt;")
	assert.Contains(t, out, "&lt;script&gt;bad()&lt;/script&gt; (Rating: N/A)")
}

type upperMarkdown struct{}

func (upperMarkdown) ToHTML(src []byte) []byte {
	return []byte("<p>" + strings.ToUpper(string(src)) + "</p>")
}

type passThrough struct{}

func (passThrough) SanitizeBytes(b []byte) []byte { return b }

func TestRender_CustomCollaborators(t *testing.T) {
	r := NewRenderer(WithMarkdown(upperMarkdown{}), WithSanitizer(passThrough{}))
	container := newContainer()

	require.NoError(t, r.Render(decode(t, `{"gemini_review":"quiet","entities":[{"name":"A"}]}`), container))

	assert.Contains(t, inner(t, container), `<div class="gemini-review"><p>QUIET</p></div>`)
}

func TestReplaceText(t *testing.T) {
	container := newContainer()
	require.NoError(t, NewRenderer().Render(decode(t, `{"entities":[{"name":"A"}]}`), container))

	ReplaceText(container, "An error occurred: boom")

	assert.Equal(t, "An error occurred: boom", inner(t, container))
}
