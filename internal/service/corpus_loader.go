package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/util"

	"go.uber.org/zap"
)

var (
	// ErrNoSuchFolder indicates the input directory does not exist.
	ErrNoSuchFolder = errors.New("no such folder")
	// ErrNoTextFiles indicates the directory contains no .txt files.
	ErrNoTextFiles = errors.New("no text files")
	// ErrEmptyCorpus indicates every file yielded zero tokens after cleaning.
	ErrEmptyCorpus = errors.New("empty corpus")
)

// Corpus is the flat training stream: every token from every file, in file
// order, with per-file internal order preserved. Built once, read-only
// thereafter.
type Corpus struct {
	Tokens     []string
	TotalLines int
	FileCount  int
}

// CorpusLoader discovers .txt files in a directory, decodes and tokenizes
// them with a fixed-size worker pool, and concatenates the results into a
// single Corpus. A file that fails to read or decode is logged and skipped;
// one bad file never aborts the batch.
type CorpusLoader struct {
	tokenizer  Tokenizer
	numWorkers int
	logger     *zap.Logger
}

// NewCorpusLoader creates a loader with the given worker count. Counts below
// one fall back to 2 workers.
func NewCorpusLoader(tokenizer Tokenizer, numWorkers int, logger *zap.Logger) *CorpusLoader {
	if tokenizer == nil {
		tokenizer = NewWordTokenizer()
	}
	if numWorkers < 1 {
		numWorkers = 2
	}
	return &CorpusLoader{
		tokenizer:  tokenizer,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// fileResult is one worker's output for one file. Workers share nothing:
// each writes into its own result slot.
type fileResult struct {
	tokens []string
	lines  int
}

// Load reads every .txt file under dir and returns the aggregated corpus.
func (cl *CorpusLoader) Load(ctx context.Context, dir string) (*Corpus, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFolder, dir)
	}

	files, err := cl.listTextFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .txt files found in %s", ErrNoTextFiles, dir)
	}

	results := make([]fileResult, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cl.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = cl.processFile(ctx, files[i])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Aggregation is single-threaded after all workers complete.
	corpus := &Corpus{FileCount: len(files)}
	for _, res := range results {
		corpus.Tokens = append(corpus.Tokens, res.tokens...)
		corpus.TotalLines += res.lines
	}

	if len(corpus.Tokens) == 0 {
		return nil, fmt.Errorf("%w: no valid text content found in %s", ErrEmptyCorpus, dir)
	}

	cl.logger.Info("Corpus loaded",
		zap.String("dir", dir),
		zap.Int("files", corpus.FileCount),
		zap.Int("total_lines", corpus.TotalLines),
		zap.Int("total_tokens", len(corpus.Tokens)),
	)

	return corpus, nil
}

// processFile reads, decodes and tokenizes one file. Failures are recovered
// locally: the file contributes zero tokens and the batch continues.
func (cl *CorpusLoader) processFile(ctx context.Context, path string) fileResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		cl.logger.Warn("Failed to read file, skipping",
			zap.String("path", path),
			zap.Error(err),
		)
		return fileResult{}
	}

	content, err := util.DecodeText(raw)
	if err != nil {
		cl.logger.Warn("Failed to decode file, skipping",
			zap.String("path", path),
			zap.Error(err),
		)
		return fileResult{}
	}

	if strings.TrimSpace(content) == "" {
		return fileResult{}
	}

	tokens, err := cl.tokenizer.Tokenize(ctx, []byte(content))
	if err != nil {
		cl.logger.Warn("Failed to tokenize file, skipping",
			zap.String("path", path),
			zap.Error(err),
		)
		return fileResult{}
	}

	lines := strings.Count(content, "\n") + 1
	cl.logger.Info("Processed file",
		zap.String("file", filepath.Base(path)),
		zap.Int("lines", lines),
		zap.Int("tokens", len(tokens)),
	)

	return fileResult{tokens: tokens, lines: lines}
}

func (cl *CorpusLoader) listTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
