package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogisticRegression is a binary linear classifier trained with full-batch
// gradient descent. Training is fully deterministic: weights start at zero
// and the gradient is an ordered sum over the corpus. Fields are exported for
// gob serialization inside the model artifact.
type LogisticRegression struct {
	Weights []float64
	Bias    float64

	// Hyperparameters. Lambda is the L2 penalty (the inverse of sklearn's C);
	// the iteration cap and tolerance bound the descent.
	Lambda       float64
	LearningRate float64
	MaxIter      int
	Tol          float64
}

// NewLogisticRegression returns an untrained classifier with the training
// defaults: regularization strength matching C=0.1, up to 1000 iterations.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		Lambda:       10.0, // 1/C with C=0.1
		LearningRate: 0.5,
		MaxIter:      1000,
		Tol:          1e-6,
	}
}

// Fit trains on sparse TF-IDF vectors with balanced class weighting: each
// class contributes weight n/(2*count), so the minority class is not drowned
// out by residual imbalance after augmentation.
func (m *LogisticRegression) Fit(vectors []Vector, labels []int, numFeatures int) error {
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return fmt.Errorf("logreg: invalid training set (%d vectors, %d labels)", len(vectors), len(labels))
	}

	var positives int
	for _, y := range labels {
		if y == 1 {
			positives++
		}
	}
	negatives := len(labels) - positives
	if positives == 0 || negatives == 0 {
		return fmt.Errorf("logreg: training set must contain both classes (positive=%d, negative=%d)", positives, negatives)
	}

	n := float64(len(labels))
	classWeight := map[int]float64{
		1: n / (2 * float64(positives)),
		0: n / (2 * float64(negatives)),
	}

	m.Weights = make([]float64, numFeatures)
	m.Bias = 0
	grad := make([]float64, numFeatures)

	for iter := 0; iter < m.MaxIter; iter++ {
		for i := range grad {
			grad[i] = 0
		}
		biasGrad := 0.0

		for i, vec := range vectors {
			p := m.probability(vec)
			residual := (p - float64(labels[i])) * classWeight[labels[i]]
			for _, f := range vec {
				grad[f.Index] += residual * f.Value
			}
			biasGrad += residual
		}

		// L2 penalty applies to weights only, never to the bias.
		floats.AddScaled(grad, m.Lambda, m.Weights)

		step := m.LearningRate / n
		floats.AddScaled(m.Weights, -step, grad)
		m.Bias -= step * biasGrad

		if floats.Norm(grad, 2)/n < m.Tol {
			break
		}
	}

	return nil
}

// Predict returns the binary class for a document vector: 1 when the
// estimated probability of the positive class reaches 0.5.
func (m *LogisticRegression) Predict(vec Vector) int {
	if m.probability(vec) >= 0.5 {
		return 1
	}
	return 0
}

func (m *LogisticRegression) probability(vec Vector) float64 {
	z := m.Bias
	for _, f := range vec {
		if f.Index < len(m.Weights) {
			z += m.Weights[f.Index] * f.Value
		}
	}
	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
