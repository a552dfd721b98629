package markov

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/model/ngram"
)

// ErrEmptyChain indicates generation was requested against a chain with no
// contexts.
var ErrEmptyChain = errors.New("empty markov chain")

// Generator produces text by walking a Chain with weighted random sampling.
// It owns its random source; callers generating concurrently must each use
// their own Generator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate walks the chain until the output holds length tokens, starting
// from start when provided or from a uniformly random context otherwise. An
// empty start is treated the same as an absent one. The walk stops early
// when it reaches a context with no observed continuation; the result is
// then shorter than requested, which is expected and not an error. The
// output is never shorter than the start context.
func (g *Generator) Generate(chain *Chain, length int, start ngram.Context) ([]string, error) {
	if chain.Len() == 0 {
		return nil, ErrEmptyChain
	}

	if len(start) == 0 {
		start = chain.RandomContext(g.rng)
	}

	output := make([]string, 0, length)
	output = append(output, start...)

	for len(output) < length {
		if len(output) < chain.n {
			// A start shorter than the chain order can never form a
			// lookup key.
			break
		}
		key := ngram.ContextOf(output, chain.n)
		tr, ok := chain.table[key.Key()]
		if !ok {
			break
		}
		output = append(output, g.sample(tr))
	}

	return output, nil
}

// sample draws one successor token, weighted by observed frequency.
func (g *Generator) sample(tr *transitions) string {
	pick := g.rng.Intn(tr.total)
	for _, token := range tr.order {
		pick -= tr.counts[token]
		if pick < 0 {
			return token
		}
	}
	// Unreachable while counts sum to total.
	return tr.order[len(tr.order)-1]
}

// Text renders a generated token sequence as whitespace-joined text.
func Text(tokens []string) string {
	return strings.Join(tokens, " ")
}
