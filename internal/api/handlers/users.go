package handlers

import (
	"log"
	"net/http"
	"strings"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// UserHandler exposes user registration.
type UserHandler struct {
	Repo ports.UserRepository
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, r, http.StatusBadRequest, "email is required")
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	id, err := h.Repo.CreateUser(r.Context(), user)
	if err != nil {
		log.Printf("create user failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateResponse{ID: id})
}
