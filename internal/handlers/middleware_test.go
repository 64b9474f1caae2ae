package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsite/internal/models"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.requireAuthentication, func(c *gin.Context) {
		user := currentUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "username": user.Username})
	})
	return r
}

func getWithAuth(r http.Handler, path, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthentication_Errors(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		verifyErr error
		verifyNil bool
		wantMsg   string
	}{
		{
			name:    "missing header",
			header:  "",
			wantMsg: "missing Authorization header",
		},
		{
			name:    "invalid scheme",
			header:  "Token abc",
			wantMsg: "invalid Authorization header format",
		},
		{
			name:    "bearer without token",
			header:  "Bearer",
			wantMsg: "invalid Authorization header format",
		},
		{
			name:      "expired token",
			header:    "Bearer old",
			verifyErr: service.ErrTokenExpired,
			wantMsg:   "expired token",
		},
		{
			name:      "invalid token",
			header:    "Bearer garbage",
			verifyErr: service.ErrTokenInvalid,
			wantMsg:   "invalid token",
		},
		{
			name:      "user deleted since issuance",
			header:    "Bearer valid",
			verifyNil: true,
			wantMsg:   "invalid token",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{verifyErr: tc.verifyErr}
			if !tc.verifyNil && tc.verifyErr == nil {
				auth.verifyUser = &models.User{ID: 1, Username: "u"}
			}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := getWithAuth(r, "/secure", tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.wantMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.wantMsg)
			}
		})
	}
}

func TestRequireAuthentication_SuccessAttachesIdentity(t *testing.T) {
	auth := &mockAuth{verifyUser: &models.User{ID: 7, Username: "diana"}}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := getWithAuth(r, "/secure", "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.Username != "diana" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastVerifyToken != "good-token" {
		t.Fatalf("VerifyToken got %q, want %q", auth.lastVerifyToken, "good-token")
	}
}

func TestAdminRoute_NonAdminRejected(t *testing.T) {
	auth := &mockAuth{verifyUser: &models.User{ID: 2, Username: "user", Admin: false}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getWithAuth(r, "/admin", "Bearer tok")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401; body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "Need admin privileges to continue" {
		t.Fatalf("unexpected message %q", out.Error)
	}
}

func TestAdminRoute_AdminAllowed(t *testing.T) {
	auth := &mockAuth{verifyUser: &models.User{ID: 1, Username: "root", Admin: true}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getWithAuth(r, "/admin", "Bearer tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["data"] != "top secret" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAdminRoute_NoToken(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := getWithAuth(r, "/admin", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401; body=%s", w.Code, w.Body.String())
	}
}
