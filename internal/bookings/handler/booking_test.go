package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "paintbooking/pkg/errors"
	"paintbooking/pkg/logger"
	"paintbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	submitFunc func(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error)
}

func (m *mockBookingService) Submit(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return &model.Booking{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
}

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSubmit_Success(t *testing.T) {
	var got *model.BookingSubmission
	svc := &mockBookingService{
		submitFunc: func(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error) {
			got = sub
			return &model.Booking{ID: "booking-1"}, nil
		},
	}
	h := NewBookingHandler(svc, testLogger())

	w := httptest.NewRecorder()
	h.Submit(w, postForm(url.Values{
		"name":  {"Jane"},
		"phone": {"555-1234"},
		"email": {"jane@x.com"},
		"date":  {"2024-06-01"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking successful", w.Body.String())

	require.NotNil(t, got)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "555-1234", got.Phone)
	assert.Equal(t, "jane@x.com", got.Email)
	assert.Equal(t, "2024-06-01", got.Date)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	svc := &mockBookingService{
		submitFunc: func(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error) {
			return nil, apperrors.Validation("invalid booking date")
		},
	}
	h := NewBookingHandler(svc, testLogger())

	w := httptest.NewRecorder()
	h.Submit(w, postForm(url.Values{
		"name":  {"Jane"},
		"phone": {"555-1234"},
		"email": {"jane@x.com"},
		"date":  {"garbage"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error booking: invalid booking date", w.Body.String())
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	svc := &mockBookingService{
		submitFunc: func(ctx context.Context, sub *model.BookingSubmission) (*model.Booking, error) {
			return nil, apperrors.Internal("Failed to create booking", assert.AnError)
		},
	}
	h := NewBookingHandler(svc, testLogger())

	w := httptest.NewRecorder()
	h.Submit(w, postForm(url.Values{
		"name":  {"Jane"},
		"phone": {"555-1234"},
		"email": {"jane@x.com"},
		"date":  {"2024-06-01"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error: Failed to create booking", w.Body.String())
}
