package classifier

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	StrategySubstring    = "substring"
	StrategyWholeWord    = "whole_word"
	StrategyTokenOverlap = "token_overlap"
)

// MatchStrategy decides how reference strings are looked up in a question text.
type MatchStrategy interface {
	// Name returns the strategy name
	Name() string
	// Prepare normalizes text once so it can be searched for many patterns
	Prepare(text string) Haystack
}

// Haystack is a normalized question text.
type Haystack interface {
	Contains(pattern string) bool
}

// NewStrategy constructs a strategy by name. An empty name selects the substring strategy.
func NewStrategy(name string) (MatchStrategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", StrategySubstring:
		return SubstringCaseInsensitive{}, nil
	case StrategyWholeWord:
		return WholeWordCaseInsensitive{}, nil
	case StrategyTokenOverlap:
		return TokenOverlap{}, nil
	default:
		return nil, errors.New("unsupported match strategy: " + normalized)
	}
}

func fold(s string) string {
	return strings.ToLower(s)
}

// SubstringCaseInsensitive matches a pattern anywhere in the text, ignoring case.
// "art" matches "smart".
type SubstringCaseInsensitive struct{}

func (SubstringCaseInsensitive) Name() string { return StrategySubstring }

func (SubstringCaseInsensitive) Prepare(text string) Haystack {
	return substringHaystack(fold(text))
}

type substringHaystack string

func (h substringHaystack) Contains(pattern string) bool {
	return strings.Contains(string(h), fold(pattern))
}

// WholeWordCaseInsensitive matches a pattern only where it is not glued to
// neighbouring letters or digits.
type WholeWordCaseInsensitive struct{}

func (WholeWordCaseInsensitive) Name() string { return StrategyWholeWord }

func (WholeWordCaseInsensitive) Prepare(text string) Haystack {
	return wholeWordHaystack(fold(text))
}

type wholeWordHaystack string

func (h wholeWordHaystack) Contains(pattern string) bool {
	text := string(h)
	pattern = fold(pattern)
	if pattern == "" {
		return true
	}
	first, last := firstRune(pattern), lastRune(pattern)
	for offset := 0; offset <= len(text)-len(pattern); {
		idx := strings.Index(text[offset:], pattern)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(pattern)
		leftOK := !isWordRune(first) || start == 0 || !isWordRune(lastRune(text[:start]))
		rightOK := !isWordRune(last) || end == len(text) || !isWordRune(firstRune(text[end:]))
		if leftOK && rightOK {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// TokenOverlap matches when every word of the pattern is a word of the text,
// in any order. A pattern without words never matches.
type TokenOverlap struct{}

func (TokenOverlap) Name() string { return StrategyTokenOverlap }

func (TokenOverlap) Prepare(text string) Haystack {
	tokens := make(map[string]struct{})
	for _, token := range tokenize(fold(text)) {
		tokens[token] = struct{}{}
	}
	return tokenHaystack(tokens)
}

type tokenHaystack map[string]struct{}

func (h tokenHaystack) Contains(pattern string) bool {
	tokens := tokenize(fold(pattern))
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if _, ok := h[token]; !ok {
			return false
		}
	}
	return true
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !isWordRune(r) })
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
