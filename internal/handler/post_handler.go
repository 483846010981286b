package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/gorilla/mux"
)

// formats image
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type PostFormRequest struct {
	Text    string `json:"text" validate:"required"`
	GroupID *int64 `json:"groupId"`
}

func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	detail, err := h.PostService.GetPostDetail(r.Context(), postID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, detail, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// пустой пост не сохраняем, форма возвращается без мутаций
	if strings.TrimSpace(form.Text) == "" {
		WriteError(w, "Текст поста не может быть пустым", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		AuthorID: authorID,
		Text:     form.Text,
		GroupID:  form.GroupID,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq, image)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	// после создания уводим на профиль автора
	username, _ := r.Context().Value("username").(string)
	w.Header().Set("Location", "/profile/"+username)
	WriteSuccess(w, post, http.StatusSeeOther)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(form.Text) == "" {
		WriteError(w, "Текст поста не может быть пустым", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:   postID,
		AuthorID: authorID,
		Text:     form.Text,
		GroupID:  form.GroupID,
	}

	post, err := h.PostService.UpdatePost(r.Context(), serviceReq, image)
	if err != nil {
		// чужой пост не правим: без ошибки обратно на страницу поста
		if errors.Is(err, service.ErrNotAuthor) {
			http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
			return
		}
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		WriteError(w, "Текст комментария не может быть пустым", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.AddComment(r.Context(), postID, authorID, req.Text)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	// обратно на страницу поста
	w.Header().Set("Location", fmt.Sprintf("/posts/%d", postID))
	WriteSuccess(w, comment, http.StatusSeeOther)
}

// parsePostForm разбирает тело создания/правки поста: либо multipart-форма
// с полями text, group_id и файлом image, либо обычный JSON без картинки.
func (h *Handlers) parsePostForm(r *http.Request) (*PostFormRequest, *service.ImageUpload, error) {
	contentType := r.Header.Get("Content-Type")

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var form PostFormRequest
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return nil, nil, fmt.Errorf("неверный формат запроса")
		}
		return &form, nil, nil
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(nil, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			return nil, nil, fmt.Errorf("файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024))
		}
		return nil, nil, fmt.Errorf("ошибка при обработке формы")
	}

	form := PostFormRequest{Text: r.FormValue("text")}

	if raw := r.FormValue("group_id"); raw != "" {
		groupID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("неверный ID группы")
		}
		form.GroupID = &groupID
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return &form, nil, nil
		}
		return nil, nil, fmt.Errorf("не удалось получить файл")
	}

	// check formats
	fileType := header.Header.Get("Content-Type")
	if !allowedImageTypes[fileType] {
		file.Close()
		return nil, nil, fmt.Errorf("неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP")
	}

	image := &service.ImageUpload{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	}

	return &form, image, nil
}
