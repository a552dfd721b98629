package markov

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/model/ngram"
)

// ErrInsufficientData indicates the corpus is too short to build a chain of
// the requested order.
var ErrInsufficientData = errors.New("insufficient data")

// transitions holds the observed successors of one context. Successor order
// is first-seen order so that sampling with an injected random source is
// reproducible; counts carry the frequency weights.
type transitions struct {
	counts map[string]int
	order  []string
	total  int
}

func (tr *transitions) add(token string) {
	if _, seen := tr.counts[token]; !seen {
		tr.order = append(tr.order, token)
	}
	tr.counts[token]++
	tr.total++
}

// Chain is a frequency-weighted n-gram transition table. It is built once by
// BuildChain and read-only afterwards.
type Chain struct {
	n        int
	table    map[string]*transitions
	contexts []ngram.Context // insertion order, for random start selection
}

// BuildChain slides a window of width n across the corpus and counts, for
// every observed context, each token that immediately follows it. Raw counts
// are retained; nothing is normalized, the generator samples the weights
// directly. The corpus must contain at least n+1 tokens.
func BuildChain(corpus []string, n int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("chain order must be positive, got %d", n)
	}
	if len(corpus) < n+1 {
		return nil, fmt.Errorf("%w: need at least %d tokens to build a %d-gram chain, got %d",
			ErrInsufficientData, n+1, n, len(corpus))
	}

	chain := &Chain{
		n:     n,
		table: make(map[string]*transitions),
	}

	for i := 0; i <= len(corpus)-n-1; i++ {
		context := ngram.Context(corpus[i : i+n])
		successor := corpus[i+n]

		key := context.Key()
		tr, ok := chain.table[key]
		if !ok {
			tr = &transitions{counts: make(map[string]int)}
			chain.table[key] = tr
			chain.contexts = append(chain.contexts, ngram.ContextOf(corpus[:i+n], n))
		}
		tr.add(successor)
	}

	return chain, nil
}

// Order returns the n this chain was built with.
func (c *Chain) Order() int {
	return c.n
}

// Len returns the number of distinct contexts in the chain.
func (c *Chain) Len() int {
	return len(c.table)
}

// Successors returns the successor frequency counts observed for a context,
// or ok=false when the context was never observed with a continuation.
func (c *Chain) Successors(context ngram.Context) (map[string]int, bool) {
	tr, ok := c.table[context.Key()]
	if !ok {
		return nil, false
	}
	return tr.counts, true
}

// RandomContext picks a context uniformly at random from the chain's keys.
func (c *Chain) RandomContext(rng *rand.Rand) ngram.Context {
	return c.contexts[rng.Intn(len(c.contexts))]
}

// ContextStartingWith returns the first context (in insertion order) whose
// leading token equals word, or ok=false when no context starts with it.
func (c *Chain) ContextStartingWith(word string) (ngram.Context, bool) {
	for _, ctx := range c.contexts {
		if ctx.First() == word {
			return ctx, true
		}
	}
	return nil, false
}
