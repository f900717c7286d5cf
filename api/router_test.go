package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/thalath/gridpath/api"
)

type pingController struct{}

func (pingController) Register(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
}

func TestRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api.Controller{pingController{}},
	}).Handler()

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/healthz", http.StatusOK, `{"status":"ok"}`},
		{"/api/v1/ping", http.StatusOK, "pong"},
		{"/v1/ping", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}
