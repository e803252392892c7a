package services

import (
	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"
)

type LinkService interface {
	GetLinks(userID string) ([]models.Link, error)
	CreateLink(userID string, req *dto.CreateLinkRequest) (*models.Link, error)
	UpdateLink(userID, linkID string, req *dto.UpdateLinkRequest) (*models.Link, error)
	DeleteLink(userID, linkID string) error
	ReorderLinks(userID string, req *dto.ReorderRequest) ([]models.Link, error)
}

type linkService struct {
	linkRepo     repositories.LinkRepository
	entitlements EntitlementResolver
}

func NewLinkService(linkRepo repositories.LinkRepository, entitlements EntitlementResolver) LinkService {
	return &linkService{
		linkRepo:     linkRepo,
		entitlements: entitlements,
	}
}

func (s *linkService) GetLinks(userID string) ([]models.Link, error) {
	links, err := s.linkRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.Link{}
	}
	return links, nil
}

// CreateLink checks the plan limit against a fresh count, then appends
// the link at max(order)+1. The limit check and the insert are separate
// statements, so two racing creates can momentarily exceed the limit;
// the next create corrects it.
func (s *linkService) CreateLink(userID string, req *dto.CreateLinkRequest) (*models.Link, error) {
	ents, err := s.entitlements.ResolveEntitlements(userID)
	if err != nil {
		return nil, err
	}

	if ents.LinkLimit != models.UnlimitedLinks {
		count, err := s.linkRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(ents.LinkLimit) {
			return nil, apperrors.ErrLinkLimitReached(ents.LinkLimit)
		}
	}

	order, err := s.linkRepo.NextOrder(userID)
	if err != nil {
		return nil, err
	}

	link := &models.Link{
		UserID:  userID,
		Title:   req.Title,
		URL:     req.URL,
		Icon:    req.Icon,
		Visible: true,
		Order:   order,
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateLink applies a partial update; unset fields keep their values.
// A link id belonging to another user reads the same as a missing one.
func (s *linkService) UpdateLink(userID, linkID string, req *dto.UpdateLinkRequest) (*models.Link, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if req.Visible != nil {
		fields["visible"] = *req.Visible
	}

	if len(fields) > 0 {
		if err := s.linkRepo.UpdateFields(userID, linkID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrLinkNotFound) {
				return nil, apperrors.ErrLinkNotFound
			}
			return nil, err
		}
	}

	link, err := s.linkRepo.FindOwned(userID, linkID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLinkNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}

func (s *linkService) DeleteLink(userID, linkID string) error {
	if err := s.linkRepo.Delete(userID, linkID); err != nil {
		if apperrors.Is(err, repositories.ErrLinkNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return err
	}
	return nil
}

// ReorderLinks applies the batch atomically: one foreign or missing id
// rolls the whole batch back and the previous ordering survives intact.
func (s *linkService) ReorderLinks(userID string, req *dto.ReorderRequest) ([]models.Link, error) {
	if err := s.linkRepo.Reorder(userID, req.Items); err != nil {
		if apperrors.Is(err, repositories.ErrLinkNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, err
	}
	return s.GetLinks(userID)
}
