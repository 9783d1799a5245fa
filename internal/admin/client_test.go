package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL, Timeout: timeout, PageLimit: 100, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClient_AttachesSessionAndDelegatedHeaders(t *testing.T) {
	var gotToken, gotDelegated, gotLimit string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(SessionTokenHeader)
		gotDelegated = r.Header.Get(DelegatedAccountHeader)
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"pkg"}]}`))
	}), 2*time.Second)

	sess := model.Session{UserID: 7, Token: "tok-123"}
	pkgs, err := c.Packages(context.Background(), sess, "424242")
	if err != nil {
		t.Fatalf("Packages: %v", err)
	}
	if gotToken != "tok-123" {
		t.Fatalf("session token header = %q", gotToken)
	}
	if gotDelegated != "424242" {
		t.Fatalf("delegated header = %q", gotDelegated)
	}
	if gotLimit != "100" {
		t.Fatalf("limit = %q", gotLimit)
	}
	if len(pkgs) != 1 || pkgs[0].ID != 1 {
		t.Fatalf("unexpected packages: %+v", pkgs)
	}
}

func TestClient_NoDelegatedHeaderWhenAbsent(t *testing.T) {
	var present bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[http.CanonicalHeaderKey(DelegatedAccountHeader)]
		_, _ = w.Write([]byte(`{"data":[]}`))
	}), 2*time.Second)

	if _, err := c.Packages(context.Background(), model.Session{Token: "t"}, ""); err != nil {
		t.Fatalf("Packages: %v", err)
	}
	if present {
		t.Fatal("delegated header must not be sent when no delegation is requested")
	}
}

func TestClient_AccountsIdentifiedByTokenOnly(t *testing.T) {
	var gotQuery, gotToken string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotToken = r.Header.Get(SessionTokenHeader)
		_, _ = w.Write([]byte(`{"result":{"accounts":[{"id":3,"email":"a@b.co"}]}}`))
	}), 2*time.Second)

	accounts, err := c.Accounts(context.Background(), model.Session{Token: "tok"}, "")
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("expected no query parameters, got %q", gotQuery)
	}
	if gotToken != "tok" {
		t.Fatalf("session token header = %q", gotToken)
	}
	if len(accounts) != 1 || accounts[0].ID != 3 {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestClient_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"not allowed"}`))
	}), 2*time.Second)

	_, err := c.Accounts(context.Background(), model.Session{UserID: 1, Token: "t"}, "")
	ue, ok := AsUpstream(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusForbidden {
		t.Fatalf("status = %d", ue.Status)
	}
	if ue.Body != `{"error":"not allowed"}` {
		t.Fatalf("body = %q", ue.Body)
	}
}

func TestClient_NotFoundDetection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), 2*time.Second)

	_, err := c.EventListeners(context.Background(), model.Session{Token: "t"}, "sub-c-x", "")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if IsTimeout(err) {
		t.Fatal("not-found must not be a timeout")
	}
}

func TestClient_TimeoutIsDistinctFromUpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}), 20*time.Millisecond)

	_, err := c.Packages(context.Background(), model.Session{Token: "t"}, "")
	if !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if _, ok := AsUpstream(err); ok {
		t.Fatal("timeout must not be an UpstreamError")
	}
}

func TestClient_LoginParsesSessionEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/me" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"result":{"userId":7,"accountId":3,"token":"tok"}}`))
	}), 2*time.Second)

	sess, err := c.Login(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != 7 || sess.AccountID != 3 || sess.Token != "tok" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	if _, err := New(Config{BaseURL: ""}); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if _, err := New(Config{BaseURL: "::not-a-url"}); err == nil {
		t.Fatal("expected error for invalid base URL")
	}
}
