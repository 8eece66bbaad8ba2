package repository

import (
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

func TestParse(t *testing.T) {
	parser := NewTranscriptParser()

	t.Run("Entries come back in document order with entities decoded", func(t *testing.T) {
		doc := `<text start="1.5" dur="2.25">Hello &amp; world</text><text start="4.0" dur="1.0">Bye</text>`

		entries, err := parser.Parse(doc, "en")

		assert.NoError(t, err)
		assert.Equal(t, []yt_transcript_models.CaptionEntry{
			{Text: "Hello & world", Duration: 2.25, Offset: 1.5, Lang: "en"},
			{Text: "Bye", Duration: 1.0, Offset: 4.0, Lang: "en"},
		}, entries)
	})

	t.Run("Named and numeric entities", func(t *testing.T) {
		doc := `<text start="0" dur="1">&lt;tag&gt; &quot;quoted&quot; it&#39;s &#169;</text>`

		entries, err := parser.Parse(doc, "en")

		assert.NoError(t, err)
		assert.Equal(t, `<tag> "quoted" it's ©`, entries[0].Text)
	})

	t.Run("Surrounding document noise is ignored", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="utf-8" ?><transcript>
	        <text start="0" dur="1">Hello world</text>
	    </transcript>`

		entries, err := parser.Parse(doc, "en")

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Hello world", entries[0].Text)
	})

	t.Run("No caption lines yields empty non-nil result", func(t *testing.T) {
		entries, err := parser.Parse(`<transcript></transcript>`, "en")

		assert.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Non-numeric start fails the whole document", func(t *testing.T) {
		doc := `<text start="0" dur="1">ok</text><text start="abc" dur="1">bad</text>`

		_, err := parser.Parse(doc, "en")

		assert.Error(t, err)
	})

	t.Run("Non-numeric duration fails the whole document", func(t *testing.T) {
		_, err := parser.Parse(`<text start="0" dur="">bad</text>`, "en")

		assert.Error(t, err)
	})

	t.Run("Language is stamped on every entry", func(t *testing.T) {
		doc := `<text start="0" dur="1">a</text><text start="1" dur="1">b</text>`

		entries, err := parser.Parse(doc, "pt-BR")

		assert.NoError(t, err)
		for _, entry := range entries {
			assert.Equal(t, "pt-BR", entry.Lang)
		}
	})
}

func TestParseRoundTrip(t *testing.T) {
	parser := NewTranscriptParser()

	doc := `<text start="0" dur="1.5">Hello &amp; world</text>` +
		`<text start="1.5" dur="2">it&#39;s fine</text>` +
		`<text start="3.5" dur="0.75">bye</text>`

	entries, err := parser.Parse(doc, "en")
	assert.NoError(t, err)

	// Serialize the entries back into the same document shape and reparse.
	var rebuilt strings.Builder
	for _, entry := range entries {
		rebuilt.WriteString(fmt.Sprintf(`<text start="%g" dur="%g">%s</text>`,
			entry.Offset, entry.Duration, html.EscapeString(entry.Text)))
	}

	reparsed, err := parser.Parse(rebuilt.String(), "en")
	assert.NoError(t, err)
	assert.Equal(t, entries, reparsed)
}
