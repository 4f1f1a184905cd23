package api

import (
	"context"
)

type settingsResponse struct {
	IsDarkMode bool `json:"isDarkMode"`
}

func getSettings(ctx context.Context) (*settingsResponse, error) {
	s := GetServicer(ctx)

	return &settingsResponse{IsDarkMode: s.DarkMode()}, nil
}
