package services

import (
	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type UserService interface {
	GetMe(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	CheckUsername(username string) (*dto.CheckUsernameResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetMe(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update. A username change checks for
// conflicts first; other users' rows are excluded from the check so
// re-submitting your own username is a no-op, not a conflict.
func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		taken, err := s.userRepo.IsUsernameTaken(*req.Username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrUsernameTaken
		}
		user.Username = req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Image != nil {
		user.Image = *req.Image
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	if req.ButtonStyle != nil {
		user.ButtonStyle = *req.ButtonStyle
	}
	if req.SocialLinks != nil {
		user.SocialLinks = datatypes.JSON(req.SocialLinks)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CheckUsername(username string) (*dto.CheckUsernameResponse, error) {
	taken, err := s.userRepo.IsUsernameTaken(username, "")
	if err != nil {
		return nil, err
	}
	return &dto.CheckUsernameResponse{Available: !taken}, nil
}
