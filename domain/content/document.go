// Package content models the structured message document: a small tree of
// typed nodes carrying text and formatting marks. The editor schema itself is
// out of scope; only the shapes accepted for storage are defined here.
package content

import (
	"strings"

	"courier/errors"
)

// Node types accepted for storage. Anything else is rejected on validation
// and dropped on sanitization.
const (
	NodeDoc       = "doc"
	NodeParagraph = "paragraph"
	NodeText      = "text"
	NodeHeading   = "heading"
)

// Formatting marks accepted on text nodes.
const (
	MarkBold   = "bold"
	MarkItalic = "italic"
	MarkCode   = "code"
)

// MaxTextLength bounds the total plain text of a document.
const MaxTextLength = 2000

var allowedNodes = map[string]struct{}{
	NodeDoc: {}, NodeParagraph: {}, NodeText: {}, NodeHeading: {},
}

var allowedMarks = map[string]struct{}{
	MarkBold: {}, MarkItalic: {}, MarkCode: {},
}

// Mark is a formatting annotation on a text node.
type Mark struct {
	Type string `json:"type" cbor:"type"`
}

// Document is one node of the content tree. The root must be of type doc.
type Document struct {
	Type    string         `json:"type" cbor:"type"`
	Text    string         `json:"text,omitempty" cbor:"text,omitempty"`
	Marks   []Mark         `json:"marks,omitempty" cbor:"marks,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty" cbor:"attrs,omitempty"`
	Content []Document     `json:"content,omitempty" cbor:"content,omitempty"`
}

// PlainText concatenates the text of every text node in document order.
func (d Document) PlainText() string {
	var sb strings.Builder
	d.appendText(&sb)
	return sb.String()
}

func (d Document) appendText(sb *strings.Builder) {
	if d.Type == NodeText {
		sb.WriteString(d.Text)
	}
	for _, child := range d.Content {
		child.appendText(sb)
	}
}

// Validate checks the document against the storage schema: a doc root with
// child content, only allowed node and mark types, and a non-empty plain
// text within MaxTextLength. All violations surface as InvalidContent.
func Validate(d Document) error {
	if d.Type != NodeDoc {
		return errors.InvalidContent("content root must be a doc node")
	}
	if len(d.Content) == 0 {
		return errors.InvalidContent("document content must not be empty")
	}
	if err := validateNode(d); err != nil {
		return err
	}
	length := len([]rune(d.PlainText()))
	if length == 0 {
		return errors.InvalidContent("message cannot be empty")
	}
	if length > MaxTextLength {
		return errors.InvalidContent("message too long")
	}
	return nil
}

func validateNode(d Document) error {
	if _, ok := allowedNodes[d.Type]; !ok {
		return errors.InvalidContent("invalid node type: " + d.Type)
	}
	for _, mark := range d.Marks {
		if _, ok := allowedMarks[mark.Type]; !ok {
			return errors.InvalidContent("invalid mark type: " + mark.Type)
		}
	}
	for _, child := range d.Content {
		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}

// Text builds a minimal valid document from a plain string. Convenience for
// clients and tests.
func Text(text string) Document {
	return Document{
		Type: NodeDoc,
		Content: []Document{{
			Type:    NodeParagraph,
			Content: []Document{{Type: NodeText, Text: text}},
		}},
	}
}

// MapText returns a copy of the document with fn applied to every text node.
// Used by moderation to censor terms without touching structure.
func (d Document) MapText(fn func(string) string) Document {
	out := d
	if d.Type == NodeText {
		out.Text = fn(d.Text)
	}
	if len(d.Content) > 0 {
		out.Content = make([]Document, len(d.Content))
		for i, child := range d.Content {
			out.Content[i] = child.MapText(fn)
		}
	}
	return out
}
