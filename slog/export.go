// Package slog provides logging decorators for the domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bhilliardga/canvex"
)

// Ensure LoggingExportService implements canvex.ExportService.
var _ canvex.ExportService = (*LoggingExportService)(nil)

// LoggingExportService wraps an ExportService with operational logging.
type LoggingExportService struct {
	next   canvex.ExportService
	logger *slog.Logger
}

// NewLoggingExportService creates a new LoggingExportService.
func NewLoggingExportService(next canvex.ExportService, logger *slog.Logger) *LoggingExportService {
	return &LoggingExportService{next: next, logger: logger}
}

// Export delegates to the wrapped service and logs the outcome.
func (s *LoggingExportService) Export(ctx context.Context, req canvex.ExportRequest) (result *canvex.ExportResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"api_base", req.APIBase,
			"include_concluded", req.IncludeConcluded,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"courses", len(result.Manifest),
				"downloads", len(result.Downloads),
				"archive_bytes", len(result.Archive),
			)
		}
		s.logger.Info("export", attrs...)
	}(time.Now())
	return s.next.Export(ctx, req)
}
