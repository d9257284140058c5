// Package model loads the trained risk classifier and categorical encoder
// and runs inference over them.
package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"creditrisk/internal/decision"
	"creditrisk/internal/decision/ports"
	"creditrisk/internal/platform/metrics"
	dErrors "creditrisk/pkg/domain-errors"
)

const defaultLoadTimeout = 30 * time.Second

// Loader loads both artifacts once per process and caches the outcome,
// failure included. It satisfies ports.ArtifactProvider.
type Loader struct {
	source         Source
	classifierName string
	encoderName    string
	loadTimeout    time.Duration
	logger         *slog.Logger
	metrics        *metrics.Metrics

	once       sync.Once
	classifier *Forest
	encoder    *LabelEncoder
	err        error
}

type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

func WithLoadTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.loadTimeout = d
	}
}

func NewLoader(source Source, classifierName, encoderName string, opts ...Option) (*Loader, error) {
	if source == nil {
		return nil, fmt.Errorf("artifact source is required")
	}
	if classifierName == "" || encoderName == "" {
		return nil, fmt.Errorf("classifier and encoder artifact names are required")
	}

	l := &Loader{
		source:         source,
		classifierName: classifierName,
		encoderName:    encoderName,
		loadTimeout:    defaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

var _ ports.ArtifactProvider = (*Loader)(nil)

// Artifacts returns the cached classifier and encoder, loading them on the
// first call. Concurrent first callers wait for the same load. The caller's
// cancellation does not abort the shared load.
func (l *Loader) Artifacts(ctx context.Context) (ports.Classifier, ports.Encoder, error) {
	l.once.Do(func() {
		l.load(context.WithoutCancel(ctx))
	})
	if l.err != nil {
		return nil, nil, l.err
	}
	return l.classifier, l.encoder, nil
}

func (l *Loader) load(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, l.loadTimeout)
	defer cancel()
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := l.source.Fetch(ctx, l.classifierName)
		if err != nil {
			return fmt.Errorf("fetch classifier: %w", err)
		}
		forest, err := DecodeForest(raw)
		if err != nil {
			return fmt.Errorf("decode classifier: %w", err)
		}
		l.classifier = forest
		return nil
	})

	g.Go(func() error {
		raw, err := l.source.Fetch(ctx, l.encoderName)
		if err != nil {
			return fmt.Errorf("fetch encoder: %w", err)
		}
		encoder, err := DecodeLabelEncoder(raw)
		if err != nil {
			return fmt.Errorf("decode encoder: %w", err)
		}
		l.encoder = encoder
		return nil
	})

	err := g.Wait()
	if err == nil && l.classifier.NFeatures != decision.FeatureCount {
		err = fmt.Errorf("classifier expects %d features, engine supplies %d", l.classifier.NFeatures, decision.FeatureCount)
	}
	elapsed := time.Since(start)

	if err != nil {
		l.classifier, l.encoder = nil, nil
		l.err = dErrors.Wrap(err, dErrors.CodeModelUnavailable, "risk model is not loaded")
		l.metrics.ObserveArtifactLoad(metrics.OutcomeFailure, elapsed)
		if l.logger != nil {
			l.logger.ErrorContext(ctx, "failed to load risk model artifacts",
				"classifier", l.classifierName,
				"encoder", l.encoderName,
				"timeout", errors.Is(err, context.DeadlineExceeded),
				"error", err,
			)
		}
		return
	}

	l.metrics.ObserveArtifactLoad(metrics.OutcomeSuccess, elapsed)
	if l.logger != nil {
		l.logger.InfoContext(ctx, "risk model artifacts loaded",
			"classifier", l.classifierName,
			"encoder", l.encoderName,
			"trees", len(l.classifier.Trees),
			"classes", l.encoder.Classes(),
			"duration_ms", elapsed.Milliseconds(),
		)
	}
}
