package verify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T, path, authorization, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != authorization {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHubUser(t *testing.T) {
	srv := newServer(t, "/user", "token gh-secret", `{"login":"octocat","id":1}`)
	v := &Verifier{GitHubAPI: srv.URL, Client: srv.Client()}

	login, err := v.GitHubUser(context.Background(), "gh-secret")
	if err != nil {
		t.Fatalf("GitHubUser returned error: %s", err)
	}
	if login != "octocat" {
		t.Errorf("login = %s; want octocat", login)
	}

	if _, err := v.GitHubUser(context.Background(), "wrong"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v; want ErrInvalidToken", err)
	}
}

func TestNpmUser(t *testing.T) {
	srv := newServer(t, "/-/whoami", "Bearer npm-secret", `{"username":"publisher"}`)
	v := &Verifier{NpmRegistry: srv.URL, Client: srv.Client()}

	user, err := v.NpmUser(context.Background(), "npm-secret")
	if err != nil {
		t.Fatalf("NpmUser returned error: %s", err)
	}
	if user != "publisher" {
		t.Errorf("user = %s; want publisher", user)
	}

	if _, err := v.NpmUser(context.Background(), "wrong"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v; want ErrInvalidToken", err)
	}
}

func TestUnexpectedResponse(t *testing.T) {
	srv := newServer(t, "/-/whoami", "Bearer npm-secret", `{"name":"publisher"}`)
	v := &Verifier{NpmRegistry: srv.URL, Client: srv.Client()}

	_, err := v.NpmUser(context.Background(), "npm-secret")
	if err == nil || errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v; want unexpected response error", err)
	}
}

func TestNew(t *testing.T) {
	v := New()
	if v.GitHubAPI != DefaultGitHubAPI || v.NpmRegistry != DefaultNpmRegistry {
		t.Errorf("unexpected defaults: %+v", v)
	}
}
