package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"linkbio_backend/internal/models"
	"linkbio_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := CreateCreator(t, ts)

	// Create
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/links", token, map[string]interface{}{
		"title": "My Blog",
		"url":   "https://example.com/blog",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created models.Link
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, 0, created.Order)
	assert.True(t, created.Visible)

	// Update
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/links/"+created.ID, token, map[string]interface{}{
		"title":   "Renamed",
		"visible": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Link
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Renamed", updated.Title)
	assert.False(t, updated.Visible)
	assert.Equal(t, "https://example.com/blog", updated.URL)

	// List
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/links", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var links []models.Link
	require.NoError(t, json.Unmarshal([]byte(body), &links))
	assert.Len(t, links, 1)

	// Delete
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/links/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/links/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateLink_FreePlanLimit(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := CreateCreator(t, ts)

	for i := 0; i < 5; i++ {
		helpers.CreateTestLink(t, ts.DB, user.ID, "link", i)
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/links", token, map[string]interface{}{
		"title": "Sixth",
		"url":   "https://example.com/6",
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode, body)

	var errResp struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]int `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "LIMIT_EXCEEDED", errResp.Error.Code)
	assert.Equal(t, 5, errResp.Error.Details["limit"])
}

func TestCreateLink_ProPlanUnlimited(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := CreateCreator(t, ts)
	helpers.ActivateSubscription(t, ts.DB, user.ID, "pro")

	for i := 0; i < 6; i++ {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/links", token, map[string]interface{}{
			"title": "Link",
			"url":   "https://example.com",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}
}

func TestReorderLinks(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := CreateCreator(t, ts)
	a := helpers.CreateTestLink(t, ts.DB, user.ID, "a", 0)
	b := helpers.CreateTestLink(t, ts.DB, user.ID, "b", 1)
	c := helpers.CreateTestLink(t, ts.DB, user.ID, "c", 2)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/links/reorder", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": c.ID, "order": 0},
			{"id": a.ID, "order": 1},
			{"id": b.ID, "order": 2},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var links []models.Link
	require.NoError(t, json.Unmarshal([]byte(body), &links))
	require.Len(t, links, 3)
	assert.Equal(t, c.ID, links[0].ID)
	assert.Equal(t, a.ID, links[1].ID)
	assert.Equal(t, b.ID, links[2].ID)
}

func TestReorderLinks_ForeignIDRollsBack(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := CreateCreator(t, ts)
	_, other := CreateCreator(t, ts)

	a := helpers.CreateTestLink(t, ts.DB, user.ID, "a", 0)
	b := helpers.CreateTestLink(t, ts.DB, user.ID, "b", 1)
	foreign := helpers.CreateTestLink(t, ts.DB, other.ID, "x", 0)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/links/reorder", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": b.ID, "order": 0},
			{"id": foreign.ID, "order": 1},
		},
	})
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	// The previous ordering is untouched.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/links", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var links []models.Link
	require.NoError(t, json.Unmarshal([]byte(body), &links))
	require.Len(t, links, 2)
	assert.Equal(t, a.ID, links[0].ID)
	assert.Equal(t, b.ID, links[1].ID)
}

func TestUpdateLink_OtherUsersLink(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, owner := CreateCreator(t, ts)
	attackerToken, _ := CreateCreator(t, ts)

	link := helpers.CreateTestLink(t, ts.DB, owner.ID, "mine", 0)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/links/"+link.ID, attackerToken, map[string]interface{}{
		"title": "hijacked",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "foreign links read as missing")
}
