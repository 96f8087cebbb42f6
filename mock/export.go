package mock

import (
	"context"

	"github.com/bhilliardga/canvex"
)

var _ canvex.ExportService = (*ExportService)(nil)

// ExportService is a mock implementation of canvex.ExportService.
type ExportService struct {
	ExportFn func(ctx context.Context, req canvex.ExportRequest) (*canvex.ExportResult, error)
}

func (s *ExportService) Export(ctx context.Context, req canvex.ExportRequest) (*canvex.ExportResult, error) {
	return s.ExportFn(ctx, req)
}
