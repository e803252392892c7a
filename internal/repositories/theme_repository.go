package repositories

import (
	"errors"

	"linkbio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrThemeNotFound = errors.New("theme not found")

type ThemeRepository interface {
	FindByUser(userID string) ([]models.CustomTheme, error)
	FindByID(id string) (*models.CustomTheme, error)
	// FindOwned returns ErrThemeNotFound both for a missing id and for
	// a theme owned by another user.
	FindOwned(userID, id string) (*models.CustomTheme, error)
	Create(theme *models.CustomTheme) error
	Update(theme *models.CustomTheme) error
	// DeleteWithFallback removes the theme and, when it is the owner's
	// active theme, resets the owner's theme to fallbackKey in the same
	// transaction so the profile never dangles.
	DeleteWithFallback(theme *models.CustomTheme, fallbackKey string) error
}

type ThemeRepositoryImpl struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &ThemeRepositoryImpl{db: db}
}

func (r *ThemeRepositoryImpl) FindByUser(userID string) ([]models.CustomTheme, error) {
	var themes []models.CustomTheme
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&themes).Error
	return themes, err
}

func (r *ThemeRepositoryImpl) FindByID(id string) (*models.CustomTheme, error) {
	var theme models.CustomTheme
	err := r.db.First(&theme, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, err
	}
	return &theme, nil
}

func (r *ThemeRepositoryImpl) FindOwned(userID, id string) (*models.CustomTheme, error) {
	var theme models.CustomTheme
	err := r.db.First(&theme, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, err
	}
	return &theme, nil
}

func (r *ThemeRepositoryImpl) Create(theme *models.CustomTheme) error {
	return r.db.Create(theme).Error
}

func (r *ThemeRepositoryImpl) Update(theme *models.CustomTheme) error {
	return r.db.Save(theme).Error
}

func (r *ThemeRepositoryImpl) DeleteWithFallback(theme *models.CustomTheme, fallbackKey string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", theme.ID, theme.UserID).
			Delete(&models.CustomTheme{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrThemeNotFound
		}

		return tx.Model(&models.User{}).
			Where("id = ? AND theme = ?", theme.UserID, theme.ID).
			Update("theme", fallbackKey).Error
	})
}
