package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation failures must be rejected before any repository access, so
// these tests run handlers with no repositories wired at all: reaching
// storage would panic and fail the test.

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCreateVenueValidationFailureSkipsStorage(t *testing.T) {
	h := &VenueHandler{} // nil repos: any storage access panics
	rec := postJSON(t, h.CreateVenue, `{"name":"","city":"San Francisco"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "address")
	assert.NotContains(t, resp.Errors, "city")
}

func TestCreateVenueRejectsMalformedBody(t *testing.T) {
	h := &VenueHandler{}
	rec := postJSON(t, h.CreateVenue, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateArtistValidationFailureSkipsStorage(t *testing.T) {
	h := &ArtistHandler{}
	rec := postJSON(t, h.CreateArtist, `{"name":"Guns N Petals"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "city")
	assert.Contains(t, resp.Errors, "phone")
}

func TestCreateShowValidationFailureSkipsStorage(t *testing.T) {
	h := &ShowHandler{}
	rec := postJSON(t, h.CreateShow, `{"venue_id":1,"artist_id":4,"start_time":"not-a-time"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "start_time")
}

func TestGetVenueInvalidID(t *testing.T) {
	h := &VenueHandler{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	require.NoError(t, h.GetVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteArtistInvalidID(t *testing.T) {
	h := &ArtistHandler{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("-1")

	require.NoError(t, h.DeleteArtist(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
