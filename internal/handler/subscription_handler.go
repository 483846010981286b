package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Follow подписывает зрителя на автора. Подписка на себя и повторная
// подписка молча пропускаются, ответ в любом случае уводит на ленту подписок.
func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	username := mux.Vars(r)["username"]

	if err := h.SubscriptionService.Follow(r.Context(), viewerID, username); err != nil {
		writeRepoError(w, err)
		return
	}

	http.Redirect(w, r, "/follow", http.StatusSeeOther)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	username := mux.Vars(r)["username"]

	if err := h.SubscriptionService.Unfollow(r.Context(), viewerID, username); err != nil {
		writeRepoError(w, err)
		return
	}

	http.Redirect(w, r, "/follow", http.StatusSeeOther)
}
