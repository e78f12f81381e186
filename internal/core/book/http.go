// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/readalong/internal/platform/apperr"
	"github.com/taibuivan/readalong/internal/platform/middleware"
	requestutil "github.com/taibuivan/readalong/internal/platform/request"
	"github.com/taibuivan/readalong/internal/platform/respond"
	"github.com/taibuivan/readalong/internal/platform/sec"
	"github.com/taibuivan/readalong/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCatalogueRoutes mounts the book collection endpoints.
func (handler *Handler) RegisterCatalogueRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listBooks)

	// Admin only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/", handler.createBook)
}

// RegisterBookRoutes mounts the endpoints for a single book; the caller is
// expected to mount them under a route carrying a {slug} parameter.
func (handler *Handler) RegisterBookRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.getBook)
	router.Get("/deadlines", handler.listDeadlines)
	router.Get("/deadlines/current", handler.currentDeadline)

	// Admin only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/deadlines", handler.createDeadline)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	books, total, err := handler.service.ListBooks(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input CreateBookInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	b, err := handler.service.GetBook(request.Context(), bookSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, b)
}

func (handler *Handler) listDeadlines(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	deadlines, err := handler.service.ListDeadlines(request.Context(), bookSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deadlines)
}

func (handler *Handler) currentDeadline(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	deadline, err := handler.service.CurrentDeadline(request.Context(), bookSlug, time.Now().UTC())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if deadline == nil {
		respond.Error(writer, request, apperr.NotFound("Deadline"))
		return
	}
	respond.OK(writer, deadline)
}

func (handler *Handler) createDeadline(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	var input CreateDeadlineInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateDeadline(request.Context(), bookSlug, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
