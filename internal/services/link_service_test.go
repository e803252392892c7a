package services

import (
	"testing"

	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinkServiceForTest(limit int) (LinkService, *fakeLinkRepo) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &fixedEntitlements{linkLimit: limit})
	return svc, repo
}

func TestCreateLink_AppendsAtEnd(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	first, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Blog", URL: "https://example.com/blog"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)
	assert.True(t, first.Visible, "new links start visible")

	second, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Shop", URL: "https://example.com/shop"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)
}

func TestCreateLink_EnforcesPlanLimit(t *testing.T) {
	svc, _ := newLinkServiceForTest(2)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Link", URL: "https://example.com"})
		require.NoError(t, err)
	}

	_, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "One too many", URL: "https://example.com"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)
	assert.Equal(t, map[string]int{"limit": 2}, appErr.Details)
}

func TestCreateLink_UnlimitedPlanSkipsCount(t *testing.T) {
	svc, _ := newLinkServiceForTest(models.UnlimitedLinks)

	for i := 0; i < 30; i++ {
		_, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Link", URL: "https://example.com"})
		require.NoError(t, err)
	}

	links, err := svc.GetLinks("user-1")
	require.NoError(t, err)
	assert.Len(t, links, 30)
}

func TestCreateLink_LimitIsPerUser(t *testing.T) {
	svc, _ := newLinkServiceForTest(1)

	_, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "A", URL: "https://example.com"})
	require.NoError(t, err)

	// Another user's collection is counted separately.
	_, err = svc.CreateLink("user-2", &dto.CreateLinkRequest{Title: "B", URL: "https://example.com"})
	require.NoError(t, err)
}

func TestUpdateLink_PartialUpdate(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	link, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Old", URL: "https://example.com/old"})
	require.NoError(t, err)

	newTitle := "New"
	hidden := false
	updated, err := svc.UpdateLink("user-1", link.ID, &dto.UpdateLinkRequest{Title: &newTitle, Visible: &hidden})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.False(t, updated.Visible)
	assert.Equal(t, "https://example.com/old", updated.URL, "unset fields keep their values")
}

func TestUpdateLink_ForeignLinkReadsAsNotFound(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	link, err := svc.CreateLink("owner", &dto.CreateLinkRequest{Title: "Mine", URL: "https://example.com"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.UpdateLink("attacker", link.ID, &dto.UpdateLinkRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrLinkNotFound)

	// The link is untouched.
	kept, err := svc.UpdateLink("owner", link.ID, &dto.UpdateLinkRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Mine", kept.Title)
}

func TestDeleteLink(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	link, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "Temp", URL: "https://example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLink("user-1", link.ID))
	assert.ErrorIs(t, svc.DeleteLink("user-1", link.ID), apperrors.ErrLinkNotFound)
}

func TestDeleteLink_LimitFreesUpSlot(t *testing.T) {
	svc, _ := newLinkServiceForTest(1)

	link, err := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "A", URL: "https://example.com"})
	require.NoError(t, err)

	_, err = svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "B", URL: "https://example.com"})
	require.Error(t, err)

	require.NoError(t, svc.DeleteLink("user-1", link.ID))

	_, err = svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "B", URL: "https://example.com"})
	assert.NoError(t, err)
}

func TestReorderLinks_AppliesBatch(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	a, _ := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "A", URL: "https://example.com/a"})
	b, _ := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "B", URL: "https://example.com/b"})
	c, _ := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "C", URL: "https://example.com/c"})

	links, err := svc.ReorderLinks("user-1", &dto.ReorderRequest{Items: []repositories.OrderAssignment{
		{ID: c.ID, Order: 0},
		{ID: a.ID, Order: 1},
		{ID: b.ID, Order: 2},
	}})
	require.NoError(t, err)

	require.Len(t, links, 3)
	assert.Equal(t, "C", links[0].Title)
	assert.Equal(t, "A", links[1].Title)
	assert.Equal(t, "B", links[2].Title)
}

func TestReorderLinks_ForeignIDAbortsWholeBatch(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	a, _ := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "A", URL: "https://example.com/a"})
	b, _ := svc.CreateLink("user-1", &dto.CreateLinkRequest{Title: "B", URL: "https://example.com/b"})
	foreign, _ := svc.CreateLink("user-2", &dto.CreateLinkRequest{Title: "X", URL: "https://example.com/x"})

	_, err := svc.ReorderLinks("user-1", &dto.ReorderRequest{Items: []repositories.OrderAssignment{
		{ID: b.ID, Order: 0},
		{ID: foreign.ID, Order: 1},
	}})
	assert.ErrorIs(t, err, apperrors.ErrLinkNotFound)

	// The previous ordering survives intact.
	links, err := svc.GetLinks("user-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, links[0].ID)
	assert.Equal(t, b.ID, links[1].ID)
}

func TestGetLinks_EmptyCollectionIsNotNil(t *testing.T) {
	svc, _ := newLinkServiceForTest(5)

	links, err := svc.GetLinks("nobody")
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
