package markov

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/service"

	"go.uber.org/zap"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func newTestService(seed int64) *Service {
	logger := zap.NewNop()
	loader := service.NewCorpusLoader(service.NewWordTokenizer(), 2, logger)
	return NewService(loader, rand.New(rand.NewSource(seed)), logger)
}

func TestService_Run(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "one.txt",
		"The quick brown fox jumps over the lazy dog.\nThe lazy dog sleeps all day.\n")
	writeCorpusFile(t, dir, "two.txt",
		"The quick fox runs. The dog barks at the fox.\n")

	set, err := newTestService(42).Run(context.Background(), dir, 30)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if set.SeedWord == "" {
		t.Fatal("Expected a seed word")
	}
	if len(set.Samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(set.Samples))
	}

	for i, sample := range set.Samples {
		if sample.Order != i+1 {
			t.Fatalf("Expected sample %d to have order %d, got %d", i, i+1, sample.Order)
		}
		if sample.Text == "" {
			t.Fatalf("Expected non-empty %d-gram text", sample.Order)
		}
		if tokens := strings.Fields(sample.Text); len(tokens) > 30 {
			t.Fatalf("%d-gram sample longer than requested: %d tokens", sample.Order, len(tokens))
		}
	}
}

func TestService_RunPropagatesLoaderErrors(t *testing.T) {
	svc := newTestService(1)

	if _, err := svc.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), 10); err == nil {
		t.Fatal("Expected error for missing folder")
	}
}

func TestService_RunInsufficientCorpus(t *testing.T) {
	dir := t.TempDir()
	// Two tokens: enough for a unigram chain but not a trigram one.
	writeCorpusFile(t, dir, "tiny.txt", "hello world\n")

	if _, err := newTestService(1).Run(context.Background(), dir, 10); err == nil {
		t.Fatal("Expected insufficient data error for a two-token corpus")
	}
}

func TestResolveStart_PrefersSeedAnchoredContext(t *testing.T) {
	corpus := strings.Fields("a b c a d e f")
	chain, err := BuildChain(corpus, 2)
	if err != nil {
		t.Fatalf("Failed to build chain: %v", err)
	}

	svc := newTestService(3)
	start := svc.resolveStart(chain, "a", zap.NewNop())
	if start.First() != "a" {
		t.Fatalf("Expected start anchored to 'a', got %q", start.Key())
	}
}

func TestResolveStart_FallsBackToRandomContext(t *testing.T) {
	// "f" is the final token: it opens no bigram context, so the start must
	// fall back to a random context instead of failing.
	corpus := strings.Fields("a b c a d e f")
	chain, err := BuildChain(corpus, 2)
	if err != nil {
		t.Fatalf("Failed to build chain: %v", err)
	}

	svc := newTestService(3)
	start := svc.resolveStart(chain, "f", zap.NewNop())
	if len(start) != 2 {
		t.Fatalf("Expected a bigram context, got %q", start.Key())
	}
	if _, ok := chain.Successors(start); !ok {
		t.Fatalf("Fallback start %q is not a chain context", start.Key())
	}
}
