// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/readalong/internal/platform/middleware"
	requestutil "github.com/taibuivan/readalong/internal/platform/request"
	"github.com/taibuivan/readalong/internal/platform/respond"
	"github.com/taibuivan/readalong/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the progress endpoints for a single book; the caller
// mounts them under a route carrying a {slug} parameter. All routes require
// an authenticated reader because the ledger is keyed by reader identity.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Post("/entries", handler.submitEntry)
		authedRoute.Get("/entries", handler.listEntries)
		authedRoute.Get("/progress", handler.getProgress)

		// Admin repair tool
		authedRoute.With(middleware.RequireRole(sec.RoleAdmin)).
			Post("/progress/recompute", handler.recomputeSnapshot)
	})
}

func (handler *Handler) submitEntry(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	reader, err := requestutil.RequiredReader(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SubmitEntryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.SubmitEntry(request.Context(), bookSlug, reader, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entry)
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	reader, err := requestutil.RequiredReader(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.EntriesForReader(request.Context(), bookSlug, reader)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) getProgress(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	reader, err := requestutil.RequiredReader(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetProgress(request.Context(), bookSlug, reader)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) recomputeSnapshot(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	// Admins repair a named reader's snapshot, not their own.
	reader := request.URL.Query().Get("reader")
	if reader == "" {
		var err error
		reader, err = requestutil.RequiredReader(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	snapshot, err := handler.service.RecomputeSnapshot(request.Context(), bookSlug, reader)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snapshot)
}
