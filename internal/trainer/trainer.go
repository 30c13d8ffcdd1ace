package trainer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mailroom.app/triage/internal/dataset"
	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/ml"
	"mailroom.app/triage/internal/text"
)

// Config locates the training outputs and pins the split seed.
type Config struct {
	ModelPath   string
	MetricsPath string
	Seed        int64
}

// Result carries the fitted pipeline and the held-out evaluation reports.
type Result struct {
	Pipeline   *ml.Pipeline
	Validation ml.Report
	Test       ml.Report
}

var classNames = map[int]string{
	dataset.LabelUnproductive: string(domain.CategoryUnproductive),
	dataset.LabelProductive:   string(domain.CategoryProductive),
}

// Train fits the TF-IDF + logistic-regression pipeline on an anonymized,
// augmented corpus, evaluates it on held-out validation and test splits, and
// persists the model artifact and the test metrics report. An empty or
// single-class corpus aborts the run with nothing written.
func Train(corpus []dataset.Example, cfg Config) (*Result, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}

	split, err := dataset.StratifiedSplit(corpus, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("split corpus: %w", err)
	}
	slog.Info("corpus partitioned",
		"train", len(split.Train), "val", len(split.Val), "test", len(split.Test))

	trainDocs, trainLabels := normalize(split.Train)

	vectorizer := ml.NewVectorizer()
	if err := vectorizer.Fit(trainDocs); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}
	slog.Info("vectorizer fitted", "vocabulary", vectorizer.NumFeatures())

	model := ml.NewLogisticRegression()
	if err := model.Fit(vectorizer.TransformAll(trainDocs), trainLabels, vectorizer.NumFeatures()); err != nil {
		return nil, fmt.Errorf("fit classifier: %w", err)
	}

	pipeline := &ml.Pipeline{Vectorizer: vectorizer, Model: model}

	result := &Result{
		Pipeline:   pipeline,
		Validation: evaluate(pipeline, split.Val),
		Test:       evaluate(pipeline, split.Test),
	}
	logReport("validation", result.Validation)
	logReport("test", result.Test)

	if err := ml.SavePipeline(cfg.ModelPath, pipeline); err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}
	slog.Info("model saved", "path", cfg.ModelPath)

	if err := saveMetrics(cfg.MetricsPath, result.Test); err != nil {
		return nil, fmt.Errorf("save metrics: %w", err)
	}
	slog.Info("metrics saved", "path", cfg.MetricsPath)

	return result, nil
}

func normalize(examples []dataset.Example) ([]string, []int) {
	docs := make([]string, len(examples))
	labels := make([]int, len(examples))
	for i, ex := range examples {
		docs[i] = text.Normalize(ex.Text)
		labels[i] = ex.Label
	}
	return docs, labels
}

func evaluate(pipeline *ml.Pipeline, examples []dataset.Example) ml.Report {
	docs, labels := normalize(examples)
	preds := make([]int, len(docs))
	for i, doc := range docs {
		preds[i] = pipeline.Predict(doc)
	}
	return ml.Evaluate(labels, preds, classNames)
}

func logReport(split string, report ml.Report) {
	slog.Info("evaluation report",
		"split", split,
		"accuracy", fmt.Sprintf("%.4f", report.Accuracy),
		"f1", fmt.Sprintf("%.4f", report.F1))
	for class, m := range report.PerClass {
		slog.Info("per-class metrics",
			"split", split,
			"class", class,
			"precision", fmt.Sprintf("%.4f", m.Precision),
			"recall", fmt.Sprintf("%.4f", m.Recall),
			"support", m.Support)
	}
}

func saveMetrics(path string, report ml.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
