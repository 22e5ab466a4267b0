package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		path     string
		want     int
		wantBody string
	}{
		{name: "banner", path: "/", want: 200, wantBody: HomeMessage},
		{name: "healthz ok", path: "/healthz", want: 200, wantBody: `{"status":"ok"}`},
		{name: "readyz not mounted", path: "/readyz", want: 404},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler().Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if tc.wantBody != "" && w.Body.String() != tc.wantBody {
				t.Fatalf("body=%q want %q", w.Body.String(), tc.wantBody)
			}
		})
	}
}
