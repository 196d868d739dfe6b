package validate

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestParseTelegramID(t *testing.T) {
	c := testContext(t)
	c.Params = gin.Params{{Key: "telegramID", Value: "123456789"}}

	id, cause, respErr := ParseTelegramID(c, "telegramID")
	if cause != nil || respErr != nil {
		t.Fatalf("unexpected errors: %v, %v", cause, respErr)
	}
	if id != 123456789 {
		t.Errorf("id = %d", id)
	}

	c.Params = gin.Params{{Key: "telegramID", Value: "abc"}}
	_, cause, respErr = ParseTelegramID(c, "telegramID")
	if cause == nil || respErr == nil {
		t.Fatal("non-numeric id must fail")
	}
}

func TestGetInt64Query(t *testing.T) {
	c := testContext(t)
	c.Request = httptest.NewRequest("GET", "/?page=3&size=oops", nil)

	if n, err := GetInt64Query(c, "page", 0); err != nil || n != 3 {
		t.Errorf("page = %d, %v", n, err)
	}
	if n, err := GetInt64Query(c, "missing", 20); err != nil || n != 20 {
		t.Errorf("default = %d, %v", n, err)
	}
	if _, err := GetInt64Query(c, "size", 20); err == nil {
		t.Error("non-numeric query must fail")
	}
}
