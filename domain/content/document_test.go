package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"courier/errors"
)

func TestValidate_Accepts_Simple_Text_Document(t *testing.T) {
	req := require.New(t)
	req.NoError(Validate(Text("hello there")))
}

func TestValidate_Rejects_Bad_Documents(t *testing.T) {
	req := require.New(t)

	cases := map[string]Document{
		"non-doc root":   {Type: NodeParagraph},
		"empty document": {Type: NodeDoc},
		"unknown node": {Type: NodeDoc, Content: []Document{
			{Type: "video", Text: "x"},
		}},
		"unknown mark": {Type: NodeDoc, Content: []Document{
			{Type: NodeText, Text: "x", Marks: []Mark{{Type: "blink"}}},
		}},
		"no text": {Type: NodeDoc, Content: []Document{
			{Type: NodeParagraph},
		}},
		"too long": Text(strings.Repeat("a", MaxTextLength+1)),
	}

	for name, doc := range cases {
		err := Validate(doc)
		req.Error(err, name)
		req.Equal(errors.CodeInvalidContent, errors.CodeOf(err), name)
	}
}

func TestValidate_Length_Counts_Runes_Not_Bytes(t *testing.T) {
	req := require.New(t)
	// Multibyte characters up to the exact limit
	req.NoError(Validate(Text(strings.Repeat("é", MaxTextLength))))
	req.Error(Validate(Text(strings.Repeat("é", MaxTextLength+1))))
}

func TestSanitize_Strips_Unknown_Nodes_And_Fragments(t *testing.T) {
	req := require.New(t)
	doc := Document{
		Type: NodeDoc,
		Content: []Document{
			{Type: NodeParagraph, Content: []Document{
				{Type: NodeText, Text: "see <script>alert(1)</script> here"},
			}},
			{Type: "embed", Text: "dropped entirely"},
			{Type: NodeText, Text: "click javascript:evil()", Marks: []Mark{
				{Type: MarkBold}, {Type: "blink"},
			}},
		},
	}

	clean := Sanitize(doc)

	req.Len(clean.Content, 2)
	req.Equal("see alert(1) here", clean.Content[0].Content[0].Text)
	req.Equal("click evil()", clean.Content[1].Text)
	req.Equal([]Mark{{Type: MarkBold}}, clean.Content[1].Marks)
}

func TestPlainText_Concatenates_In_Document_Order(t *testing.T) {
	req := require.New(t)
	doc := Document{
		Type: NodeDoc,
		Content: []Document{
			{Type: NodeHeading, Content: []Document{{Type: NodeText, Text: "title"}}},
			{Type: NodeParagraph, Content: []Document{
				{Type: NodeText, Text: "first "},
				{Type: NodeText, Text: "second"},
			}},
		},
	}
	req.Equal("titlefirst second", doc.PlainText())
}

func TestMapText_Keeps_Structure(t *testing.T) {
	req := require.New(t)
	doc := Text("hello world")

	upper := doc.MapText(strings.ToUpper)

	req.Equal("HELLO WORLD", upper.PlainText())
	// Original untouched
	req.Equal("hello world", doc.PlainText())
	req.Equal(doc.Type, upper.Type)
	req.Len(upper.Content, len(doc.Content))
}
