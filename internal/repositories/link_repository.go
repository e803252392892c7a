package repositories

import (
	"errors"

	"linkbio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLinkNotFound = errors.New("link not found")

// OrderAssignment is one (link id, new order) pair of a reorder batch.
type OrderAssignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type LinkRepository interface {
	FindByUser(userID string) ([]models.Link, error)
	FindVisibleByUser(userID string) ([]models.Link, error)
	FindByID(id string) (*models.Link, error)
	// FindOwned returns ErrLinkNotFound both for a missing id and for a
	// link owned by another user.
	FindOwned(userID, id string) (*models.Link, error)
	CountByUser(userID string) (int64, error)
	// NextOrder returns max(sort_order)+1 for the user, 0 when the
	// collection is empty.
	NextOrder(userID string) (int, error)
	Create(link *models.Link) error
	// UpdateFields applies a partial update filtered by both id and
	// owner; returns ErrLinkNotFound when zero rows match.
	UpdateFields(userID, id string, fields map[string]interface{}) error
	Delete(userID, id string) error
	// Reorder applies the whole batch inside a single transaction; any
	// assignment that matches zero rows aborts and rolls back all of it.
	Reorder(userID string, assignments []OrderAssignment) error
}

type LinkRepositoryImpl struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &LinkRepositoryImpl{db: db}
}

func (r *LinkRepositoryImpl) FindByUser(userID string) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("user_id = ?", userID).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

func (r *LinkRepositoryImpl) FindVisibleByUser(userID string) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("user_id = ? AND visible = ?", userID, true).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

func (r *LinkRepositoryImpl) FindByID(id string) (*models.Link, error) {
	var link models.Link
	err := r.db.First(&link, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepositoryImpl) FindOwned(userID, id string) (*models.Link, error) {
	var link models.Link
	err := r.db.First(&link, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Link{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *LinkRepositoryImpl) NextOrder(userID string) (int, error) {
	var maxOrder int
	err := r.db.Model(&models.Link{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func (r *LinkRepositoryImpl) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

func (r *LinkRepositoryImpl) UpdateFields(userID, id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Link{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

func (r *LinkRepositoryImpl) Delete(userID, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

func (r *LinkRepositoryImpl) Reorder(userID string, assignments []OrderAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range assignments {
			result := tx.Model(&models.Link{}).
				Where("id = ? AND user_id = ?", item.ID, userID).
				Update("sort_order", item.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrLinkNotFound
			}
		}
		return nil
	})
}
