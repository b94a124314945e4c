package api

import (
	"time"

	"textsim/internal/textutil"
)

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// CompareResponse is the result of scoring one text pair.
type CompareResponse struct {
	Score     float64 `json:"score"`
	Formatted string  `json:"formatted"`
}

// VectorizeResponse lists the term frequencies of a single text.
type VectorizeResponse struct {
	Terms       []textutil.Term `json:"terms"`
	UniqueTerms int             `json:"uniqueTerms"`
	TotalTerms  int             `json:"totalTerms"`
}

// DemoResult is one row of the built-in sample comparison.
type DemoResult struct {
	Pair        string  `json:"pair"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Formatted   string  `json:"formatted"`
}

// CacheStats reports vector cache usage.
type CacheStats struct {
	Enabled  bool   `json:"enabled"`
	Capacity int    `json:"capacity"`
	Size     int    `json:"size"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// ScoreStats reports scoring latency.
type ScoreStats struct {
	Count      int64   `json:"count"`
	MeanMillis float64 `json:"meanMillis"`
	P95Millis  float64 `json:"p95Millis"`
}

// StatusResponse describes a running HTTP daemon.
type StatusResponse struct {
	Running       bool       `json:"running"`
	PID           int        `json:"pid"`
	Bind          string     `json:"bind"`
	LockFilePath  string     `json:"lockFilePath"`
	StartedAt     string     `json:"startedAt,omitempty"`
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Cache         CacheStats `json:"cache"`
	Scores        ScoreStats `json:"scores"`
}

// FormatTime renders t for API payloads, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
