package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"field_estimator/internal/adapter/http/dto/request"
	"field_estimator/internal/adapter/http/middleware"
	"field_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var testPrincipal = entities.Principal{UserID: 10, CompanyID: 1, Username: "owner", Role: entities.RoleOwner}

// newRouter returns an engine whose routes see testPrincipal as the caller.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidations(); err != nil {
		t.Fatalf("register validations: %v", err)
	}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextPrincipal, testPrincipal)
		c.Next()
	})
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
