// Package moderation censors configured terms in message content before it
// is persisted or fanned out. Matching is resilient to leet speak, casing
// and interleaved punctuation; replacement preserves the original length.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"courier/domain/content"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized forms
// of the censored terms. An empty term list yields a pass-through moderator.
func NewModerator(censoredTerms []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	if len(censoredTerms) == 0 {
		return &Moderator{censoredChar: censoredChar, log: log}, nil
	}
	patterns := make([][]rune, len(censoredTerms))
	for i, term := range censoredTerms {
		patterns[i] = normalizeRunes([]rune(term))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censoredChar: censoredChar, log: log}, nil
}

// CensorDocument applies Censor to every text node, leaving the document
// structure untouched.
func (m *Moderator) CensorDocument(doc content.Document) content.Document {
	if m.matcher == nil {
		return doc
	}
	return doc.MapText(m.Censor)
}

// Censor identifies forbidden patterns and replaces the original characters
// while preserving spacing.
func (m *Moderator) Censor(original string) string {
	if m.matcher == nil {
		return original
	}
	mapping := m.normalize(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	origRunes := []rune(original)
	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
	}
	return string(origRunes)
}

// normalize transforms the input into a searchable form and tracks original
// rune positions so matches can be mapped back for replacement.
func (m *Moderator) normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
