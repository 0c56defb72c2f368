package content

import "strings"

// fragments stripped from text nodes regardless of marks. The document is
// structured, not HTML, but text nodes may still end up rendered verbatim by
// naive clients.
var dangerousFragments = []string{
	"<script>", "</script>",
	"<iframe>", "</iframe>",
	"javascript:",
}

// Sanitize returns a copy of the document containing only allowed node and
// mark types, with dangerous fragments removed from text. Unknown nodes are
// dropped with their subtree; unknown marks are dropped individually.
func Sanitize(d Document) Document {
	out, _ := sanitizeNode(d)
	return out
}

func sanitizeNode(d Document) (Document, bool) {
	if _, ok := allowedNodes[d.Type]; !ok {
		return Document{}, false
	}

	out := Document{Type: d.Type, Attrs: d.Attrs}

	if d.Text != "" {
		text := d.Text
		for _, fragment := range dangerousFragments {
			text = strings.ReplaceAll(text, fragment, "")
		}
		out.Text = text
	}

	for _, mark := range d.Marks {
		if _, ok := allowedMarks[mark.Type]; ok {
			out.Marks = append(out.Marks, mark)
		}
	}

	for _, child := range d.Content {
		if clean, ok := sanitizeNode(child); ok {
			out.Content = append(out.Content, clean)
		}
	}
	return out, true
}
