package api

import (
	"context"
)

func toggleDarkMode(ctx context.Context) (*settingsResponse, error) {
	s := GetServicer(ctx)

	return &settingsResponse{IsDarkMode: s.ToggleDarkMode()}, nil
}
