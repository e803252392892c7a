package services

import (
	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"
)

type ThemeService interface {
	GetMyThemes(userID string) ([]models.CustomTheme, error)
	GetTheme(userID, themeID string) (*models.CustomTheme, error)
	GetPresets() map[string]models.ThemeColors
	CreateTheme(userID string, req *dto.ThemeRequest) (*models.CustomTheme, error)
	UpdateTheme(userID, themeID string, req *dto.ThemeRequest) (*models.CustomTheme, error)
	DeleteTheme(userID, themeID string) error
}

type themeService struct {
	themeRepo repositories.ThemeRepository
}

func NewThemeService(themeRepo repositories.ThemeRepository) ThemeService {
	return &themeService{themeRepo: themeRepo}
}

func (s *themeService) GetMyThemes(userID string) ([]models.CustomTheme, error) {
	themes, err := s.themeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if themes == nil {
		themes = []models.CustomTheme{}
	}
	return themes, nil
}

func (s *themeService) GetTheme(userID, themeID string) (*models.CustomTheme, error) {
	theme, err := s.themeRepo.FindOwned(userID, themeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThemeNotFound) {
			return nil, apperrors.ErrThemeNotFound
		}
		return nil, err
	}
	return theme, nil
}

func (s *themeService) GetPresets() map[string]models.ThemeColors {
	return models.PresetThemes
}

func (s *themeService) CreateTheme(userID string, req *dto.ThemeRequest) (*models.CustomTheme, error) {
	theme := &models.CustomTheme{
		UserID:     userID,
		Name:       req.Name,
		Main:       req.Main,
		Card:       req.Card,
		CardBorder: req.CardBorder,
		Text:       req.Text,
		Primary:    req.Primary,
		Accent:     req.Accent,
	}
	if err := s.themeRepo.Create(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *themeService) UpdateTheme(userID, themeID string, req *dto.ThemeRequest) (*models.CustomTheme, error) {
	theme, err := s.themeRepo.FindOwned(userID, themeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThemeNotFound) {
			return nil, apperrors.ErrThemeNotFound
		}
		return nil, err
	}

	theme.Name = req.Name
	theme.Main = req.Main
	theme.Card = req.Card
	theme.CardBorder = req.CardBorder
	theme.Text = req.Text
	theme.Primary = req.Primary
	theme.Accent = req.Accent

	if err := s.themeRepo.Update(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// DeleteTheme removes the theme; if it was the user's active theme the
// profile is reset to the default preset in the same transaction.
func (s *themeService) DeleteTheme(userID, themeID string) error {
	theme := &models.CustomTheme{}
	theme.ID = themeID
	theme.UserID = userID
	err := s.themeRepo.DeleteWithFallback(theme, models.DefaultThemeKey)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThemeNotFound) {
			return apperrors.ErrThemeNotFound
		}
		return err
	}
	return nil
}
