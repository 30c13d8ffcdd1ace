package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mailroom.app/triage/core/config"
	"mailroom.app/triage/internal/dataset"
	"mailroom.app/triage/internal/trainer"
)

func main() {
	cfg := config.Load()

	datasetPath := flag.String("dataset", cfg.Model.DatasetPath, "path to the labeled email dataset (JSON)")
	modelPath := flag.String("model", cfg.Model.Path, "output path for the trained model artifact")
	metricsPath := flag.String("metrics", cfg.Model.MetricsPath, "output path for the held-out test metrics (JSON)")
	seed := flag.Int64("seed", cfg.Model.Seed, "random seed for the stratified split")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	examples, err := dataset.Load(*datasetPath)
	if err != nil {
		slog.Error("failed to load dataset", "path", *datasetPath, "error", err)
		os.Exit(1)
	}
	slog.Info("dataset loaded", "path", *datasetPath, "examples", len(examples))

	corpus := dataset.Augment(examples)
	slog.Info("dataset augmented", "examples", len(corpus))

	result, err := trainer.Train(corpus, trainer.Config{
		ModelPath:   *modelPath,
		MetricsPath: *metricsPath,
		Seed:        *seed,
	})
	if err != nil {
		slog.Error("training failed", "error", err)
		os.Exit(1)
	}

	slog.Info("training complete",
		"model", *modelPath,
		"metrics", *metricsPath,
		"features", result.Pipeline.Vectorizer.NumFeatures(),
		"test_accuracy", fmt.Sprintf("%.4f", result.Test.Accuracy),
		"test_f1", fmt.Sprintf("%.4f", result.Test.F1),
	)
}
