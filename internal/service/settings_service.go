package service

import "github.com/spec-kit/ppe-dashboard/internal/domain"

// SettingsService serves the admin-only configuration document.
type SettingsService struct{}

// NewSettingsService builds the service.
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Settings returns the site configuration.
func (s *SettingsService) Settings() domain.SiteSettings {
	return sampleSettings()
}
