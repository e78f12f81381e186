// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/readalong/internal/platform/middleware"
	requestutil "github.com/taibuivan/readalong/internal/platform/request"
	"github.com/taibuivan/readalong/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the dashboard endpoint for a single book; the caller
// mounts it under a route carrying a {slug} parameter.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Get("/dashboard", handler.getDashboard)
}

func (handler *Handler) getDashboard(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	reader, err := requestutil.RequiredReader(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Assemble(request.Context(), bookSlug, reader)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}
