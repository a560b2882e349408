package services

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/logger"
)

// maxLogEntries bounds the in-memory request log.
const maxLogEntries = 1000

// LogEntry records a single handled request.
type LogEntry struct {
	Timestamp  time.Time     `json:"timestamp"`
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration"`
}

// MonitoringService keeps a bounded in-memory request log and exposes a gin
// middleware that feeds it while emitting one structured log line per
// request.
type MonitoringService struct {
	log *logger.Logger

	mu      sync.RWMutex
	entries []LogEntry
}

// NewMonitoringService creates a monitoring service.
func NewMonitoringService(log *logger.Logger) *MonitoringService {
	return &MonitoringService{
		log:     log,
		entries: make([]LogEntry, 0),
	}
}

// LoggingMiddleware records every handled request.
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := LogEntry{
			Timestamp:  start,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start),
		}
		s.record(entry)

		s.log.Info().
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status", entry.StatusCode).
			Dur("duration", entry.Duration).
			Msg("request")
	}
}

func (s *MonitoringService) record(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > maxLogEntries {
		s.entries = s.entries[len(s.entries)-maxLogEntries:]
	}
}

// Recent returns up to limit most recent entries, newest first.
func (s *MonitoringService) Recent(limit int) []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	out := make([]LogEntry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
