package error

import (
	"net/http"
	"testing"
)

func TestBuildersCarryCodes(t *testing.T) {
	cases := []struct {
		name      string
		err       *Error
		httpCode  int
		errorCode int
	}{
		{"not-found", NotFound("x"), http.StatusNotFound, NOT_FOUND},
		{"database", DatabaseError("x"), http.StatusInternalServerError, DATABASE_ERROR},
		{"precondition", Precondition("x"), http.StatusInternalServerError, PRECONDITION_VIOLATION},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized, UNAUTHORIZED},
		{"bad-body", BadRequestBody("x"), http.StatusBadRequest, BAD_REQUEST_BODY},
	}
	for _, tc := range cases {
		if tc.err.HttpCode() != tc.httpCode {
			t.Errorf("%s: http code = %d, want %d", tc.name, tc.err.HttpCode(), tc.httpCode)
		}
		if tc.err.ErrorCode() != tc.errorCode {
			t.Errorf("%s: error code = %d, want %d", tc.name, tc.err.ErrorCode(), tc.errorCode)
		}
		if tc.err.ErrorDesc() != "x" {
			t.Errorf("%s: desc = %q", tc.name, tc.err.ErrorDesc())
		}
	}
}

func TestMapHttpStatusToError(t *testing.T) {
	if got := MapHttpStatusToError(http.StatusNotFound, "d"); got.ErrorCode() != NOT_FOUND {
		t.Errorf("404 maps to %d", got.ErrorCode())
	}
	if got := MapHttpStatusToError(http.StatusTeapot, "d"); got.ErrorCode() != INTERNAL_ERROR {
		t.Errorf("unknown status should fall back to internal error, got %d", got.ErrorCode())
	}
}
