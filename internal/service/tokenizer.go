package service

import (
	"context"
	"regexp"
	"strings"
)

// Tokenizer converts raw text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(ctx context.Context, source []byte) ([]string, error)
}

var (
	apostropheReplacer = strings.NewReplacer("’", "'", "‘", "'", "`", "'")
	nonWordPattern     = regexp.MustCompile(`[^\w\s.]`)
	tokenPattern       = regexp.MustCompile(`\b[a-z]+\b|\.`)
)

// WordTokenizer normalizes prose into lowercase word tokens plus literal
// period tokens marking sentence ends. Contractions lose their apostrophe
// ("don't" becomes "dont"); all punctuation other than the period is
// dropped. Tokenizing already-clean text yields the same sequence back.
type WordTokenizer struct{}

// NewWordTokenizer creates a tokenizer for plain text corpora.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize applies the cleaning rules line by line, skipping blank lines.
func (t *WordTokenizer) Tokenize(_ context.Context, source []byte) ([]string, error) {
	var tokens []string

	for _, line := range strings.Split(string(source), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.ToLower(line)
		line = apostropheReplacer.Replace(line)
		line = strings.ReplaceAll(line, "'", "")
		line = nonWordPattern.ReplaceAllString(line, "")
		tokens = append(tokens, tokenPattern.FindAllString(line, -1)...)
	}

	return tokens, nil
}
