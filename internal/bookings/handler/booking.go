package handler

import (
	"net/http"

	"paintbooking/internal/bookings/service"
	apperrors "paintbooking/pkg/errors"
	httputil "paintbooking/pkg/http"
	"paintbooking/pkg/logger"
	"paintbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(bookingService service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: bookingService,
		log:     log,
	}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		h.writePlain(w, http.StatusBadRequest, "Error booking: malformed form data")
		return
	}

	sub := &model.BookingSubmission{
		Name:  r.PostFormValue("name"),
		Phone: r.PostFormValue("phone"),
		Email: r.PostFormValue("email"),
		Date:  r.PostFormValue("date"),
	}

	if _, err := h.service.Submit(r.Context(), sub); err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeInternal {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Submit", "error", writeErr)
			}
			return
		}
		h.writePlain(w, appErr.StatusCode(), "Error booking: "+appErr.Message)
		return
	}

	h.writePlain(w, http.StatusOK, "Booking successful")
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/book", h.Submit)
}

func (h *BookingHandler) writePlain(w http.ResponseWriter, statusCode int, message string) {
	if err := httputil.WritePlain(w, statusCode, message); err != nil {
		h.log.Error("failed to write response", "handler", "booking", "error", err)
	}
}
