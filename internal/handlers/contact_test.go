package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/types"
)

type stubContactService struct {
	createErr  error
	getByIDErr error
	contact    *types.Contact
	contacts   []*types.Contact
	listErr    error
	updateErr  error
	removeErr  error
	count      int64
}

func (s *stubContactService) Create(ctx context.Context, contact *types.Contact) error {
	return s.createErr
}

func (s *stubContactService) GetByID(ctx context.Context, id uuid.UUID) (*types.Contact, error) {
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	return s.contact, nil
}

func (s *stubContactService) GetByDDD(ctx context.Context, ddd string) ([]*types.Contact, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.contacts, nil
}

func (s *stubContactService) Update(ctx context.Context, contact *types.Contact) error {
	return s.updateErr
}

func (s *stubContactService) RemoveByID(ctx context.Context, id uuid.UUID) error {
	return s.removeErr
}

func (s *stubContactService) GetAllPaged(ctx context.Context, pageSize, page int) ([]*types.Contact, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.contacts, nil
}

func (s *stubContactService) GetCount(ctx context.Context) (int64, error) {
	return s.count, nil
}

func newTestRouter(t *testing.T, svc *stubContactService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	require.NoError(t, err)

	handler := NewContactHandler(log, svc)
	router := gin.New()
	api := router.Group("/api")
	api.POST("/contact", handler.Create)
	api.GET("/contact/all", handler.GetAllPaged)
	api.GET("/contact/by-ddd/:ddd", handler.GetByDDD)
	api.GET("/contact/by-id/:id", handler.GetByID)
	api.PUT("/contact", handler.Update)
	api.DELETE("/contact/:id", handler.Delete)
	return router
}

func createBody(regionID uuid.UUID) string {
	return `{"name":"Alice","phone":"999999999","email":"alice@example.com","region_id":"` + regionID.String() + `"}`
}

func TestCreateAccepted(t *testing.T) {
	router := newTestRouter(t, &stubContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(createBody(uuid.New())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Empty(t, resp.Error)
}

func TestCreateValidationRejectsOversizedFields(t *testing.T) {
	router := newTestRouter(t, &stubContactService{})

	body := `{"name":"` + strings.Repeat("a", 51) + `","phone":"999999999","email":"alice@example.com","region_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
}

func TestWorkflowErrorMapping(t *testing.T) {
	cases := []struct {
		name      string
		svc       *stubContactService
		method    string
		target    string
		body      string
		wantError string
	}{
		{
			name:      "create region not found",
			svc:       &stubContactService{createErr: types.ErrRegionNotFound},
			method:    http.MethodPost,
			target:    "/api/contact",
			body:      createBody(uuid.New()),
			wantError: "region not found",
		},
		{
			name:      "create service unavailable",
			svc:       &stubContactService{createErr: types.NewServiceUnavailableError(nil)},
			method:    http.MethodPost,
			target:    "/api/contact",
			body:      createBody(uuid.New()),
			wantError: "an external service is currently unavailable",
		},
		{
			name:      "get by id contact not found",
			svc:       &stubContactService{getByIDErr: types.ErrContactNotFound},
			method:    http.MethodGet,
			target:    "/api/contact/by-id/" + uuid.NewString(),
			wantError: "contact not found",
		},
		{
			name:      "get by ddd region not found",
			svc:       &stubContactService{listErr: types.ErrRegionNotFound},
			method:    http.MethodGet,
			target:    "/api/contact/by-ddd/99",
			wantError: "region not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, tc.svc)

			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp BaseResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.False(t, resp.Success)
			require.Equal(t, tc.wantError, resp.Error)
		})
	}
}

func TestGetByIDReturnsContact(t *testing.T) {
	contact := &types.Contact{
		ID:       uuid.New(),
		Name:     "Alice",
		Phone:    "999999999",
		Email:    "alice@example.com",
		RegionID: uuid.New(),
	}
	router := newTestRouter(t, &stubContactService{contact: contact})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/by-id/"+contact.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BaseResponse
		Data types.Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, contact.ID, resp.Data.ID)
	require.Equal(t, "Alice", resp.Data.Name)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	router := newTestRouter(t, &stubContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/by-id/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllPagedReturnsMetadata(t *testing.T) {
	contacts := []*types.Contact{
		{ID: uuid.New(), Name: "Alice"},
		{ID: uuid.New(), Name: "Bob"},
	}
	router := newTestRouter(t, &stubContactService{contacts: contacts, count: 7})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/all?pageSize=2&page=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BaseResponse
		Data         []types.Contact `json:"data"`
		CurrentPage  int             `json:"current_page"`
		TotalItems   int64           `json:"total_items"`
		ItemsPerPage int             `json:"items_per_page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	require.Equal(t, 1, resp.CurrentPage)
	require.Equal(t, int64(7), resp.TotalItems)
	require.Equal(t, 2, resp.ItemsPerPage)
}

func TestDeleteReturnsSuccessEnvelope(t *testing.T) {
	router := newTestRouter(t, &stubContactService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
}
