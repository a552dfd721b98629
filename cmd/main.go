package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/config"
	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/service"
	"github.com/Rohanjain2312/Markov-Chain-NLP/internal/service/markov"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	var appConfigPath = flag.String("app", "app.yaml", "Path to app configuration file")
	var dataDir = flag.String("data", "", "Directory containing .txt corpus files")
	var length = flag.Int("length", 0, "Tokens per generated sample")
	flag.Parse()

	cfg, err := config.LoadConfig(*appConfigPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Override config from command line if provided
	if *dataDir != "" {
		cfg.App.DataDir = *dataDir
	}
	if *length > 0 {
		cfg.App.SampleLength = *length
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(parseLevel(cfg.App.LogLevel))
	cfgZap.OutputPaths = []string{"stderr", cfg.App.LogFile}
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully", zap.Any("config", cfg))

	// First run: create the data folder and ask the user to fill it.
	if _, err := os.Stat(cfg.App.DataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.App.DataDir, 0755); err != nil {
			logger.Fatal("Failed to create data folder", zap.Error(err))
		}
		fmt.Printf("Created data folder at: %s\n", cfg.App.DataDir)
		fmt.Println("Please add your .txt files to this folder and run again.")
		return
	}

	fmt.Printf("Reading files from: %s\n", cfg.App.DataDir)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	loader := service.NewCorpusLoader(service.NewWordTokenizer(), cfg.App.NumFileThreads, logger)
	svc := markov.NewService(loader, rng, logger)

	set, err := svc.Run(context.Background(), cfg.App.DataDir, cfg.App.SampleLength)
	if err != nil {
		logger.Fatal("Generation run failed", zap.Error(err))
	}

	fmt.Printf("\n[Starting word selected: '%s']\n", set.SeedWord)
	fmt.Println("\nGenerated Text:")
	for _, sample := range set.Samples {
		fmt.Printf("\n%s Text: %s\n", orderName(sample.Order), sample.Text)
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orderName(n int) string {
	switch n {
	case 1:
		return "Unigram"
	case 2:
		return "Bigram"
	case 3:
		return "Trigram"
	default:
		return fmt.Sprintf("%d-gram", n)
	}
}
