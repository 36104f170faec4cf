// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/flix/internal/platform/request"
	"github.com/taibuivan/flix/internal/platform/respond"
	"github.com/taibuivan/flix/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public actor endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActors)
	router.Get("/names", handler.listActorNames)
	router.Get("/{name}", handler.getActorPage)

	return router
}

/*
GET /api/v1/actors

Response:
  - 200: paginated ActorDTO list, sorted by name
*/
func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	actors, meta := handler.service.ListActors(request.Context(), pagination.FromRequest(request))
	respond.Paginated(writer, actors, meta)
}

func (handler *Handler) listActorNames(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetActorNames(request.Context()))
}

/*
GET /api/v1/actors/{name}

Response:
  - 200: Page
  - 404: unknown actor
*/
func (handler *Handler) getActorPage(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	page, err := handler.service.GetActorPage(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}
