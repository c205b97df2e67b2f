package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vansh-Pandey/SocialMedia/internal/filestore"
	"github.com/Vansh-Pandey/SocialMedia/internal/service"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/http/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20

type PostHandler struct {
	postService *service.PostService
	files       filestore.Store
	logger      *zap.Logger
}

func NewPostHandler(postService *service.PostService, files filestore.Store, logger *zap.Logger) *PostHandler {
	return &PostHandler{postService: postService, files: files, logger: logger}
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		h.logger.Error("list posts failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// Create handles POST /posts with a multipart body {content, image?}.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	content := r.FormValue("content")

	image := ""
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image, err = h.files.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error("storing post image failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, content, image)
	if err != nil {
		h.logger.Error("create post failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// ToggleLike handles POST /posts/{id}/like.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("toggle like failed", zap.Error(err), zap.String("post", postID.String()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// AddComment handles POST /posts/{id}/comment with body {text}.
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.AddComment(r.Context(), userID, postID, input.Text)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("add comment failed", zap.Error(err), zap.String("post", postID.String()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, post)
}
