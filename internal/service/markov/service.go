package markov

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/model/ngram"
	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sample is one generated text along with the order of the chain that
// produced it.
type Sample struct {
	Order int
	Text  string
}

// SampleSet is the output of one full run: the globally chosen seed word and
// one sample per chain order, in ascending order.
type SampleSet struct {
	SeedWord string
	Samples  []Sample
}

// Service orchestrates a full run: load the corpus, build unigram, bigram
// and trigram chains, and generate one sample from each, anchored to a
// shared seed word where possible.
type Service struct {
	loader *service.CorpusLoader
	rng    *rand.Rand
	logger *zap.Logger
}

// NewService creates a markov service. The random source drives seed-word
// selection, start-context selection and successor sampling, so tests can
// inject a seeded one.
func NewService(loader *service.CorpusLoader, rng *rand.Rand, logger *zap.Logger) *Service {
	return &Service{
		loader: loader,
		rng:    rng,
		logger: logger,
	}
}

// Run loads every .txt file under dir and generates one sample of the given
// length per chain order.
func (s *Service) Run(ctx context.Context, dir string, length int) (*SampleSet, error) {
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	logger.Info("Starting generation run",
		zap.String("dir", dir),
		zap.Int("length", length),
	)

	corpus, err := s.loader.Load(ctx, dir)
	if err != nil {
		return nil, err
	}

	seedWord := corpus.Tokens[s.rng.Intn(len(corpus.Tokens))]
	logger.Info("Seed word selected", zap.String("seed", seedWord))

	generator := NewGenerator(s.rng)
	set := &SampleSet{SeedWord: seedWord}

	for _, n := range []int{1, 2, 3} {
		chain, err := BuildChain(corpus.Tokens, n)
		if err != nil {
			return nil, fmt.Errorf("building %d-gram chain: %w", n, err)
		}

		start := s.resolveStart(chain, seedWord, logger)
		tokens, err := generator.Generate(chain, length, start)
		if err != nil {
			return nil, fmt.Errorf("generating %d-gram text: %w", n, err)
		}

		logger.Info("Generated sample",
			zap.Int("n", n),
			zap.Int("contexts", chain.Len()),
			zap.Int("tokens", len(tokens)),
		)

		set.Samples = append(set.Samples, Sample{Order: n, Text: Text(tokens)})
	}

	return set, nil
}

// resolveStart prefers a context whose first token is the seed word, keeping
// the samples thematically anchored across orders. When the seed word never
// opens a context of this chain, it falls back to a uniformly random one.
func (s *Service) resolveStart(chain *Chain, seedWord string, logger *zap.Logger) ngram.Context {
	if start, ok := chain.ContextStartingWith(seedWord); ok {
		return start
	}

	logger.Debug("Seed word opens no context, falling back to random start",
		zap.String("seed", seedWord),
		zap.Int("n", chain.Order()),
	)
	return chain.RandomContext(s.rng)
}
