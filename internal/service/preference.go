package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/utafrali/StorefrontGo/internal/domain"
	"github.com/utafrali/StorefrontGo/internal/repository"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// PreferenceService manages per-session UI preferences.
type PreferenceService struct {
	repo   repository.PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(repo repository.PreferenceRepository, logger *slog.Logger) *PreferenceService {
	return &PreferenceService{
		repo:   repo,
		logger: logger,
	}
}

// GetTheme returns the session's theme, falling back to the default when no
// preference has been stored.
func (s *PreferenceService) GetTheme(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", apperrors.InvalidInput("session id is required")
	}

	theme, err := s.repo.GetTheme(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultTheme, nil
		}
		return "", fmt.Errorf("get theme: %w", err)
	}

	if !domain.IsValidTheme(theme) {
		// Stored value from an older build; treat as unset.
		return domain.DefaultTheme, nil
	}

	return theme, nil
}

// SetTheme stores the session's theme.
func (s *PreferenceService) SetTheme(ctx context.Context, sessionID, theme string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if !domain.IsValidTheme(theme) {
		return apperrors.InvalidInput(fmt.Sprintf("unknown theme %q", theme))
	}

	if err := s.repo.SetTheme(ctx, sessionID, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}

	s.logger.DebugContext(ctx, "theme preference updated",
		slog.String("session_id", sessionID),
		slog.String("theme", theme),
	)

	return nil
}
