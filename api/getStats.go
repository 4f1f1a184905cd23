package api

import (
	"context"

	"tableman/service"
)

func getStats(ctx context.Context) (*service.Stats, error) {
	s := GetServicer(ctx)

	stats := s.GetStats()
	return &stats, nil
}
