package handlers

import (
	"errors"
	"net/http"

	"github.com/Vansh-Pandey/SocialMedia/internal/filestore"
	"github.com/Vansh-Pandey/SocialMedia/internal/service"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/http/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	files       filestore.Store
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, files filestore.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, files: files, logger: logger}
}

// Get handles GET /users/{id}. The credential field is never serialized.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("get user failed", zap.Error(err), zap.String("user", id.String()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /users/profile with a multipart body
// {username?, bio?, profilePic?}. Absent fields keep their stored value.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	var input service.UpdateProfileInput
	if vals, ok := r.MultipartForm.Value["username"]; ok && len(vals) > 0 {
		input.Username = &vals[0]
	}
	if vals, ok := r.MultipartForm.Value["bio"]; ok && len(vals) > 0 {
		input.Bio = &vals[0]
	}

	file, header, err := r.FormFile("profilePic")
	if err == nil {
		defer file.Close()
		ref, err := h.files.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error("storing profile picture failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		input.ProfilePic = ref
	} else if !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, "Invalid profile picture upload")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "Username is already taken")
		default:
			h.logger.Error("update profile failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Search handles GET /users/search/{query}.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")

	users, err := h.userService.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("user search failed", zap.Error(err), zap.String("query", query))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, users)
}
