package services

import (
	"encoding/json"

	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"
)

// ProfileService assembles the public, unauthenticated profile page
// payload.
type ProfileService interface {
	GetPublicProfile(username string) (*dto.PublicProfile, error)
}

type profileService struct {
	userRepo  repositories.UserRepository
	linkRepo  repositories.LinkRepository
	themeRepo repositories.ThemeRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	linkRepo repositories.LinkRepository,
	themeRepo repositories.ThemeRepository,
) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		themeRepo: themeRepo,
	}
}

func (s *profileService) GetPublicProfile(username string) (*dto.PublicProfile, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	links, err := s.linkRepo.FindVisibleByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.Link{}
	}

	socialLinks := json.RawMessage(user.SocialLinks)
	if socialLinks == nil {
		socialLinks = json.RawMessage("[]")
	}

	return &dto.PublicProfile{
		Username:    username,
		Name:        user.Name,
		Bio:         user.Bio,
		Image:       user.Image,
		ButtonStyle: user.ButtonStyle,
		SocialLinks: socialLinks,
		Links:       links,
		Theme:       s.resolveTheme(user),
	}, nil
}

// resolveTheme maps User.Theme to concrete colors: preset key first,
// then an owned custom theme id, then the default preset. A dangling
// custom theme reference degrades to default instead of erroring.
func (s *profileService) resolveTheme(user *models.User) models.ThemeColors {
	if colors, ok := models.PresetThemes[user.Theme]; ok {
		return colors
	}

	theme, err := s.themeRepo.FindOwned(user.ID, user.Theme)
	if err == nil {
		return models.ThemeColors{
			Main:       theme.Main,
			Card:       theme.Card,
			CardBorder: theme.CardBorder,
			Text:       theme.Text,
			Primary:    theme.Primary,
			Accent:     theme.Accent,
		}
	}

	return models.PresetThemes[models.DefaultThemeKey]
}
