package handlers

import (
	"net/http"

	"github.com/ghuser/itemapi/pkg/errhttp"
	"github.com/ghuser/itemapi/pkg/httpx"
	appsvcs "github.com/ghuser/itemapi/services/item/application/services"
)

// ListItemsResponse is every stored item plus their count.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count" example:"1"`
} // @name ListItemsResponse

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists all items in insertion order.
//
//	@Summary		List items
//	@Description	Returns every item in creation order
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	ListItemsResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{
		Items: make([]ItemResponse, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		resp.Items[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
