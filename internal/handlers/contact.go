package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/services"
	"github.com/techchallange/contact-backend/internal/types"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

type ContactCreateRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"required,max=9"`
	Email    string `json:"email" binding:"required,email,max=80"`
	RegionID string `json:"region_id" binding:"required,uuid"`
}

type ContactUpdateRequest struct {
	ID       string `json:"id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"required,max=9"`
	Email    string `json:"email" binding:"required,email,max=80"`
	RegionID string `json:"region_id" binding:"required,uuid"`
}

func (ch *ContactHandler) Create(c *gin.Context) {
	var req ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}

	contact := &types.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		RegionID: uuid.MustParse(req.RegionID),
	}

	if err := ch.contactService.Create(c.Request.Context(), contact); err != nil {
		ch.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, BaseResponse{Success: true})
}

func (ch *ContactHandler) GetByDDD(c *gin.Context) {
	ddd := c.Param("ddd")

	contacts, err := ch.contactService.GetByDDD(c.Request.Context(), ddd)
	if err != nil {
		ch.respondServiceError(c, err)
		return
	}

	RespondData(c, contacts)
}

func (ch *ContactHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}

	contact, err := ch.contactService.GetByID(c.Request.Context(), id)
	if err != nil {
		ch.respondServiceError(c, err)
		return
	}

	RespondData(c, contact)
}

func (ch *ContactHandler) GetAllPaged(c *gin.Context) {
	pageSize := queryInt(c, "pageSize", 10)
	page := queryInt(c, "page", 0)

	contacts, err := ch.contactService.GetAllPaged(c.Request.Context(), pageSize, page)
	if err != nil {
		ch.respondServiceError(c, err)
		return
	}

	total, err := ch.contactService.GetCount(c.Request.Context())
	if err != nil {
		ch.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PagedResponse{
		BaseResponse: BaseResponse{Success: true},
		Data:         contacts,
		CurrentPage:  page,
		TotalItems:   total,
		ItemsPerPage: pageSize,
	})
}

func (ch *ContactHandler) Update(c *gin.Context) {
	var req ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}

	contact := &types.Contact{
		ID:       uuid.MustParse(req.ID),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		RegionID: uuid.MustParse(req.RegionID),
	}

	if err := ch.contactService.Update(c.Request.Context(), contact); err != nil {
		ch.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, BaseResponse{Success: true})
}

func (ch *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ch.contactService.RemoveByID(c.Request.Context(), id); err != nil {
		ch.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, BaseResponse{Success: true})
}

// respondServiceError maps workflow failures onto the API contract. Domain
// not-found and service-unavailable answers keep their messages; anything
// else collapses to a generic error.
func (ch *ContactHandler) respondServiceError(c *gin.Context, err error) {
	var unavailable *types.ServiceUnavailableError
	switch {
	case errors.Is(err, types.ErrContactNotFound),
		errors.Is(err, types.ErrRegionNotFound),
		errors.As(err, &unavailable):
		RespondError(c, http.StatusBadRequest, err)
	default:
		ch.log.Warn("Unhandled service error", "error", err)
		RespondError(c, http.StatusBadRequest, nil)
	}
}

func queryInt(c *gin.Context, name string, defaultVal int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
