package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/streamly-api/internal/api/shared"
	"github.com/phrazzld/streamly-api/internal/service"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetAll handles GET /users/getAll requests, with an optional creditcard
// filter ("yes" or "no") narrowing the listing by card presence.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("creditcard")

	users, err := h.userService.GetUsers(r.Context(), filter)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userToResponse(u))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetByUsername handles GET /users/getByUsername/{username} requests.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetUserByUsername(r.Context(), username)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserEnvelope{User: userToResponse(user)})
}

// Create handles POST /users/users/create requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), service.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Birthdate: req.Birthdate,
		CCNumber:  req.CCNumber,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	slog.Info("user created", "username", user.Username)

	shared.RespondWithJSON(w, r, http.StatusCreated, UserCreatedResponse{
		Message: "User created successfully",
		User:    userToResponse(user),
	})
}

// Delete handles DELETE /users/delete/{username} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.userService.DeleteUser(r.Context(), username); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	slog.Info("user deleted", "username", username)

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
