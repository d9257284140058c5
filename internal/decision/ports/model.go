// Package ports defines the trained-model interfaces the decision engine consumes.
// Implementations live in internal/model; tests use gomock doubles.
package ports

import "context"

// Encoder maps a categorical value to the integer code the classifier was
// trained on. Values outside the trained vocabulary fail with
// domain code unknown_category.
type Encoder interface {
	Encode(category string) (int, error)
}

// Classifier is a pre-trained binary risk classifier. Both methods must be
// deterministic and expect the exact feature order used at training time.
type Classifier interface {
	// PredictClass returns 0 (good risk) or 1 (bad risk).
	PredictClass(features []float64) (int, error)

	// PredictProbability returns the probability of class 1 in [0,1].
	PredictProbability(features []float64) (float64, error)
}

// ArtifactProvider returns the loaded classifier and encoder. Loading happens
// once per process; later calls return the cached outcome.
type ArtifactProvider interface {
	Artifacts(ctx context.Context) (Classifier, Encoder, error)
}
