package web

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/profilecard/internal/profile"
)

func testConfig(logs *bytes.Buffer) Config {
	return Config{
		HTTPAddr:      "127.0.0.1:0",
		BannerURL:     "https://example.com/banner.jpg",
		Location:      time.UTC,
		Clock:         func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) },
		RequestLogger: log.New(logs, "", 0),
	}
}

func newTestHandler(t *testing.T) (http.Handler, *profile.Card, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	config := testConfig(&logs)
	card := NewCard(config)
	h, err := NewHandler(config, card)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h, card, &logs
}

func TestNewHandlerRequiresCard(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}, nil); err == nil {
		t.Fatal("expected error for nil card")
	}
}

func TestHandlerServesCardPage(t *testing.T) {
	t.Parallel()

	h, _, logs := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Gaurav Singh", "DOB: 4/15/1996 (28 years)", `src="https://example.com/banner.jpg"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	if !strings.Contains(logs.String(), "method=GET path=/ status=200") {
		t.Fatalf("request log = %q", logs.String())
	}
}

func TestHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	for path, contentType := range map[string]string{
		"/static/app.css": "text/css",
		"/static/app.js":  "javascript",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, contentType) {
			t.Fatalf("%s content-type = %q, want %s", path, ct, contentType)
		}
	}
}

func TestHandlerHealthz(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %q", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestHandlerEditFlowSharesOneCard(t *testing.T) {
	t.Parallel()

	h, card, _ := newTestHandler(t)
	post := func(path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	if rr := post("/profile/editor/open", url.Values{}); rr.Code != http.StatusFound {
		t.Fatalf("open status = %d, want %d", rr.Code, http.StatusFound)
	}
	if card.Snapshot().Overlay != profile.OverlayOpen {
		t.Fatal("expected overlay open")
	}
	if rr := post("/profile", url.Values{"career": {"Staff Designer"}}); rr.Code != http.StatusFound {
		t.Fatalf("submit status = %d, want %d", rr.Code, http.StatusFound)
	}
	state := card.Snapshot()
	if state.Overlay != profile.OverlayClosed || state.Profile.Career != "Staff Designer" {
		t.Fatalf("state = %+v", state)
	}
}

func TestHandlerRecoversUnknownRoutes(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error for missing http address")
	}
}

func TestServerListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	server, err := NewServer(testConfig(&logs))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if server.Handler() == nil {
		t.Fatal("expected handler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not stop after cancel")
	}
	server.Close()
}

func TestServerNilSafety(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
	if server.Handler() == nil {
		t.Fatal("expected fallback handler")
	}

	srv, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	var nilCtx context.Context
	if err := srv.ListenAndServe(nilCtx); err == nil || errors.Is(err, context.Canceled) {
		t.Fatalf("ListenAndServe(nil) error = %v, want context required", err)
	}
}
