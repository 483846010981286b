package handlers

import (
	"encoding/json"
	"net/http"
	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/service"

	"github.com/gorilla/mux"
)

type GroupFeedResponse struct {
	Group models.Group    `json:"group"`
	Page  pagination.Page `json:"page"`
}

type ProfileResponse struct {
	Profile service.Profile `json:"profile"`
	Page    pagination.Page `json:"page"`
}

// Index отдает главную ленту. Готовый JSON страницы живет в кеше
// до истечения TTL, новые посты до этого момента не видны.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	payload, err := h.PageCache.GetOrCompute(r.Context(), page, func() ([]byte, error) {
		feedPage, err := h.FeedService.Index(r.Context(), page)
		if err != nil {
			return nil, err
		}
		return json.Marshal(feedPage)
	})
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handlers) GroupFeed(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	group, feedPage, err := h.FeedService.GroupFeed(r.Context(), slug, page)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, GroupFeedResponse{Group: *group, Page: feedPage}, http.StatusOK)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	// для анонима viewerID пустой, follow-состояние не считается
	viewerID, _ := r.Context().Value("userID").(string)

	profile, feedPage, err := h.FeedService.ProfileFeed(r.Context(), username, page, viewerID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{Profile: *profile, Page: feedPage}, http.StatusOK)
}

func (h *Handlers) FollowFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	feedPage, err := h.FeedService.FollowFeed(r.Context(), viewerID, page)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, feedPage, http.StatusOK)
}

// ClearCache - ручной сброс кеша главной ленты.
func (h *Handlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.PageCache.Clear(r.Context()); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Кеш очищен"}, http.StatusOK)
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.GroupRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}

	WriteSuccess(w, groups, http.StatusOK)
}
