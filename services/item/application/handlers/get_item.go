package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemapi/pkg/errhttp"
	"github.com/ghuser/itemapi/pkg/httpx"
	appsvcs "github.com/ghuser/itemapi/services/item/application/services"
)

// GetItemResponse wraps a single item.
type GetItemResponse struct {
	Item ItemResponse `json:"item"`
} // @name GetItemResponse

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item by exact ID.
//
//	@Summary		Get item
//	@Description	Returns a single item by its ID
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	GetItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httpx.NotFoundHandler(w, r)
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, GetItemResponse{Item: toItemResponse(item)})
}
