package classifier

import (
	"sort"
	"strings"
)

// Tokenizer is the interface for a text tokenizer. Implementations must
// return each token at most once.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

type whitespaceTokenizer struct{}

// WhitespaceTokenizer splits on runs of ASCII whitespace and
// removes duplicates. Tokens are case-sensitive and returned in ascending order.
var WhitespaceTokenizer Tokenizer = whitespaceTokenizer{}

func (whitespaceTokenizer) Tokenize(text string) ([]string, error) {
	return UniqueWords(text), nil
}

// UniqueWords returns the distinct tokens of text separated by ASCII
// whitespace, sorted ascending. Empty or blank text yields an empty slice.
func UniqueWords(text string) []string {
	fields := strings.FieldsFunc(text, isSpace)
	sort.Strings(fields)
	words := fields[:0]
	for i, f := range fields {
		if i > 0 && f == fields[i-1] {
			continue
		}
		words = append(words, f)
	}
	return words
}

// isSpace reports ASCII whitespace only; other Unicode spaces are part of a token.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
