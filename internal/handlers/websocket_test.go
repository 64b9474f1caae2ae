package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"eventsite/internal/models"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", defaultInterval},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=60s", defaultInterval},
		{"interval_ms_too_large", "/ws?interval_ms=60000", defaultInterval},
		{"interval_invalid_string", "/ws?interval=bogus", defaultInterval},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func wsURL(t *testing.T, srv *httptest.Server, rawQuery string) string {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = rawQuery
	return u.String()
}

func TestWebSocket_RegisteredStream_InitialAndPeriodic(t *testing.T) {
	ev := eventFixture()
	events := &mockEvents{
		bySlug: map[string]*models.Event{ev.Slug: ev},
		registered: []models.Registration{
			{ID: "r1", EventID: ev.ID, Name: "Alice", Comment: "first"},
			{ID: "r2", EventID: ev.ID, Name: "Bob", Comment: "second"},
		},
	}
	s := &service.Service{Events: events}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsRegistered)

	srv := httptest.NewServer(r)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(t, srv, "slug=launch-party&interval_ms=20"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	type payload struct {
		Event      string                `json:"event"`
		Count      int                   `json:"count"`
		Registered []models.Registration `json:"registered"`
	}

	// Read the initial registrant list
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "registered" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var p payload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if p.Event != "launch-party" || p.Count != 2 || len(p.Registered) != 2 {
		t.Fatalf("unexpected payload: %+v", p)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "registered" {
		t.Fatalf("expected type=registered, got %+v", env)
	}
}

func TestWebSocket_UnknownSlugRejectedBeforeUpgrade(t *testing.T) {
	s := &service.Service{Events: &mockEvents{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?slug=ghost", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
	}
}

func TestWebSocket_InitialListError_Closes(t *testing.T) {
	ev := eventFixture()
	events := &mockEvents{
		bySlug: map[string]*models.Event{ev.Slug: ev},
		regErr: errors.New("boom"),
	}
	s := &service.Service{Events: events}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsRegistered)

	srv := httptest.NewServer(r)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(t, srv, "slug=launch-party"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close right after the initial fetch fails.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
