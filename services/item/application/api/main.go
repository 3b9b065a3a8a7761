package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemapi/pkg/app"
	"github.com/ghuser/itemapi/pkg/httpx"
	"github.com/ghuser/itemapi/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemapi/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router. Paths are
// exact: /items/ and /items/{id}/ fall through to the not-found handler.
func ItemRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Get("/items", handlers.NewListItemsHandler(svcs).Execute)
	r.Post("/items", handlers.NewPostItemHandler(svcs, a.Logger).Execute)
	r.Get("/items/{id}", handlers.NewGetItemHandler(svcs).Execute)
}

// Endpoints describes the item routes for the index page. prefix is the
// mount point passed to chi's Route (e.g. "/api").
func Endpoints(prefix string) []httpx.Endpoint {
	return []httpx.Endpoint{
		{Method: http.MethodGet, Path: "/", Description: "List all available endpoints"},
		{Method: http.MethodGet, Path: prefix + "/items", Description: "Get all items"},
		{Method: http.MethodPost, Path: prefix + "/items", Description: "Create a new item (requires JSON body with 'name' and 'description')"},
		{Method: http.MethodGet, Path: prefix + "/items/:id", Description: "Get a specific item by ID"},
	}
}
