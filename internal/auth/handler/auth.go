package handler

import (
	"net/http"

	"paintbooking/internal/auth/service"
	apperrors "paintbooking/pkg/errors"
	httputil "paintbooking/pkg/http"
	"paintbooking/pkg/logger"
	"paintbooking/pkg/model"
	"paintbooking/pkg/session"

	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	service  service.AuthService
	sessions *session.Store
	log      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, sessions *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:  authService,
		sessions: sessions,
		log:      log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		h.writePlain(w, http.StatusBadRequest, "Error registering user: malformed form data")
		return
	}

	reg := &model.Registration{
		FullName:        r.PostFormValue("fullname"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	if err := h.service.Register(r.Context(), reg); err != nil {
		appErr := apperrors.AsAppError(err)
		switch appErr.Code {
		case apperrors.CodeValidation:
			h.writePlain(w, appErr.StatusCode(), appErr.Message)
		case apperrors.CodeInternal:
			h.writeError(w, err)
		default:
			h.writePlain(w, appErr.StatusCode(), "Error registering user: "+appErr.Message)
		}
		return
	}

	httputil.Redirect(w, r, "/login")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		h.writePlain(w, http.StatusBadRequest, "malformed form data")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	record := h.sessions.GetOrCreate(w, r)
	h.sessions.Set(record, session.UserIDKey, user.ID)

	httputil.Redirect(w, r, "/")
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
}

func (h *AuthHandler) writePlain(w http.ResponseWriter, statusCode int, message string) {
	if err := httputil.WritePlain(w, statusCode, message); err != nil {
		h.log.Error("failed to write response", "handler", "auth", "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "auth", "error", writeErr)
	}
}
