package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorWrapsSentinel(t *testing.T) {
	err := Newf(ErrEmptyName, 400, "name at index %d is empty", 3)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatal("AppError does not unwrap to its sentinel")
	}
	if got := err.Error(); got != "empty name: name at index 3 is empty" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{New(ErrMalformedRecord, 500, "bad record"), http.StatusInternalServerError},
		{ErrEmptyName, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrSourceUnavailable, http.StatusServiceUnavailable},
		{ErrTimeout, http.StatusServiceUnavailable},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatusCode(tc.err); got != tc.want {
			t.Errorf("HTTPStatusCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
