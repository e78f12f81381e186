// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/readalong/internal/platform/request"
	"github.com/taibuivan/readalong/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the ranked views for a single book; the caller mounts
// them under a route carrying a {slug} parameter. All views are public: the
// response only ever carries display names, never reader identities.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/top", handler.board(VariantTop))
	router.Get("/bottom", handler.board(VariantBottom))
	router.Get("/top-week", handler.board(VariantTopWeek))
	router.Get("/bottom-week", handler.board(VariantBottomWeek))
	router.Get("/finished", handler.board(VariantFinished))
	router.Get("/readers-today", handler.readersToday)
}

func (handler *Handler) board(variant string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		bookSlug := requestutil.Param(request, "slug")

		var (
			board *Board
			err   error
		)

		switch variant {
		case VariantTop:
			board, err = handler.service.TopReaders(request.Context(), bookSlug)
		case VariantBottom:
			board, err = handler.service.BottomReaders(request.Context(), bookSlug)
		case VariantTopWeek:
			board, err = handler.service.TopReadersThisWeek(request.Context(), bookSlug)
		case VariantBottomWeek:
			board, err = handler.service.BottomReadersThisWeek(request.Context(), bookSlug)
		case VariantFinished:
			board, err = handler.service.FinishedReaders(request.Context(), bookSlug)
		}

		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, board)
	}
}

func (handler *Handler) readersToday(writer http.ResponseWriter, request *http.Request) {
	bookSlug := requestutil.Param(request, "slug")

	count, err := handler.service.ReadersToday(request.Context(), bookSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"readers_today": count})
}
