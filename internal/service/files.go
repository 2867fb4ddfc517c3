package service

import (
	"context"
	"strings"

	"thermal_sentinel/internal/models"
)

// FileLister is the upstream download listing.
type FileLister interface {
	Files(ctx context.Context) ([]models.DataFile, error)
}

type FilesService struct {
	source FileLister
}

func NewFilesService(source FileLister) *FilesService {
	return &FilesService{source: source}
}

// List returns the upstream files matching q, in upstream order.
func (s *FilesService) List(ctx context.Context, q FileQuery) ([]models.DataFile, error) {
	files, err := s.source.Files(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	typ := strings.ToLower(strings.TrimSpace(q.Type))

	out := make([]models.DataFile, 0, len(files))
	for _, f := range files {
		if search != "" && !strings.Contains(strings.ToLower(f.Name), search) {
			continue
		}
		if typ != "" && strings.ToLower(f.Type) != typ {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
