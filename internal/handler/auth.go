package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/planetary/planetary-api/internal/model"
	"github.com/planetary/planetary-api/internal/service"
)

// AuthHandler handles HTTP requests for user accounts.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /register requests with form fields
// email, first_name, last_name and password.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req := model.RegisterRequest{
		Email:     r.FormValue("email"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Password:  r.FormValue("password"),
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, messageResponse("The Email already exists !!"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse("User created successfully"))
}

// HandleLogin handles POST /login requests. Credentials are accepted as a
// JSON body or as form fields, depending on the Content-Type header.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
			return
		}
	} else {
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, messageResponse("Bad email or password"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Message:     "Login succeeded",
		AccessToken: token,
	})
}

// HandleRetrievePassword handles GET /retrieve_password/{email} requests.
// The stored password is mailed, in cleartext, to the requested address.
func (h *AuthHandler) HandleRetrievePassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.service.RetrievePassword(r.Context(), email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse(email+" does not exist"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Password is sent to "+email))
}
