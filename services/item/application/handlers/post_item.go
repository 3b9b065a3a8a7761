package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ghuser/itemapi/pkg/errhttp"
	"github.com/ghuser/itemapi/pkg/httpx"
	"github.com/ghuser/itemapi/pkg/logger"
	pkgvalidator "github.com/ghuser/itemapi/pkg/validator"
	appsvcs "github.com/ghuser/itemapi/services/item/application/services"
	itemdomain "github.com/ghuser/itemapi/services/item/domain"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required" example:"Widget"`
	Description string `json:"description" validate:"required" example:"A small widget"`
} // @name CreateItemRequest

// CreateItemResponse is returned on successful item creation.
type CreateItemResponse struct {
	Message string       `json:"message" example:"Item created successfully"`
	Item    ItemResponse `json:"item"`
} // @name CreateItemResponse

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item. A body that is not valid JSON gets the same
// 400 response as one missing name or description.
//
//	@Summary		Create item
//	@Description	Creates a new item from a name and a description
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	CreateItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.DecodeRequest[CreateItemRequest](r)
	if err != nil {
		h.log.DebugContext(r.Context(), "create item request rejected",
			"fields", pkgvalidator.FormatValidationErrors(err),
			"invalid_json", errors.Is(err, pkgvalidator.ErrInvalidJSON),
			"error", err,
		)
		errhttp.WriteError(w, fmt.Errorf("%w: %w", itemdomain.ErrMissingFields, err))
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		h.log.ErrorContext(r.Context(), "create item failed", "error", err)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateItemResponse{
		Message: "Item created successfully",
		Item:    toItemResponse(item),
	})
}
