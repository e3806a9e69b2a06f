package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetLevelRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.GET("/api/v1/levels/:id", h.GetLevel)

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/levels/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d; want 400", id, w.Code)
		}
	}
}
