package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rcrowley/go-metrics"

	"textsim/internal/logging"
	"textsim/internal/services"
	"textsim/internal/textutil"
)

// SimilarityService scores text pairs and caches vectorized texts.
// It is safe for concurrent use.
type SimilarityService struct {
	cache     *lru.Cache[string, textutil.TermFreq]
	capacity  int
	precision int
	logger    *slog.Logger

	registry metrics.Registry
	hits     metrics.Counter
	misses   metrics.Counter
	scores   metrics.Timer
}

// NewSimilarityService builds a service whose cache holds up to cacheSize
// vectorized texts. A cacheSize of zero disables caching.
func NewSimilarityService(cacheSize, precision int, logger *slog.Logger) (*SimilarityService, error) {
	if cacheSize < 0 {
		return nil, services.Wrap(services.ErrConfiguration, "similarity", "init", "cache size must be >= 0", nil)
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	registry := metrics.NewRegistry()
	svc := &SimilarityService{
		capacity:  cacheSize,
		precision: precision,
		logger:    logging.NewComponentLogger(logger, "similarity"),
		registry:  registry,
		hits:      metrics.NewRegisteredCounter("cache.hits", registry),
		misses:    metrics.NewRegisteredCounter("cache.misses", registry),
		scores:    metrics.NewRegisteredTimer("score", registry),
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, textutil.TermFreq](cacheSize)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "similarity", "init", "create vector cache", err)
		}
		svc.cache = cache
	}
	return svc, nil
}

// Score returns the cosine similarity of two texts. Empty input yields
// textutil.NotComputable. Texts that cannot be normalized return an error
// marked with services.ErrValidation that still matches
// textutil.ErrZeroMagnitude.
func (s *SimilarityService) Score(ctx context.Context, text1, text2 string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text1 == "" || text2 == "" {
		return textutil.NotComputable, nil
	}

	start := time.Now()
	score, err := textutil.SimilarityOf(s.vectorize(text1), s.vectorize(text2))
	if err != nil {
		if errors.Is(err, textutil.ErrZeroMagnitude) {
			return 0, services.Wrap(services.ErrValidation, "similarity", "score", "text has no comparable terms", err)
		}
		return 0, err
	}
	s.scores.UpdateSince(start)
	logging.WithContext(ctx, s.logger).Debug("scored texts",
		logging.Int("text1_len", len(text1)),
		logging.Int("text2_len", len(text2)),
		logging.Float64("score", score),
	)
	return score, nil
}

// Compare scores two texts and formats the result.
func (s *SimilarityService) Compare(ctx context.Context, text1, text2 string) (CompareResponse, error) {
	score, err := s.Score(ctx, text1, text2)
	if err != nil {
		return CompareResponse{}, err
	}
	return CompareResponse{Score: score, Formatted: s.Format(score)}, nil
}

// Vectorize returns the sorted term frequencies of text.
func (s *SimilarityService) Vectorize(ctx context.Context, text string) (VectorizeResponse, error) {
	if err := ctx.Err(); err != nil {
		return VectorizeResponse{}, err
	}
	tf := s.vectorize(text)
	return VectorizeResponse{
		Terms:       tf.Sorted(),
		UniqueTerms: len(tf),
		TotalTerms:  tf.Total(),
	}, nil
}

// Format renders score at the service precision.
func (s *SimilarityService) Format(score float64) string {
	return FormatScore(score, s.precision)
}

// CacheStats reports current cache usage.
func (s *SimilarityService) CacheStats() CacheStats {
	stats := CacheStats{
		Enabled:  s.cache != nil,
		Capacity: s.capacity,
		Hits:     uint64(s.hits.Count()),
		Misses:   uint64(s.misses.Count()),
	}
	if s.cache != nil {
		stats.Size = s.cache.Len()
	}
	return stats
}

// ScoreStats summarizes the latency of computed scores. Empty input and
// failed scores are not counted.
func (s *SimilarityService) ScoreStats() ScoreStats {
	snapshot := s.scores.Snapshot()
	return ScoreStats{
		Count:      snapshot.Count(),
		MeanMillis: snapshot.Mean() / float64(time.Millisecond),
		P95Millis:  snapshot.Percentile(0.95) / float64(time.Millisecond),
	}
}

// vectorize returns a cached TermFreq when available. Cached values are
// shared, so callers must not mutate them.
func (s *SimilarityService) vectorize(text string) textutil.TermFreq {
	if s.cache == nil {
		return textutil.Vectorize(text)
	}
	if tf, ok := s.cache.Get(text); ok {
		s.hits.Inc(1)
		return tf
	}
	s.misses.Inc(1)
	tf := textutil.Vectorize(text)
	s.cache.Add(text, tf)
	return tf
}
