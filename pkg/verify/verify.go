// Package verify checks that release tokens are accepted by the services
// they are meant for.
package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/gjson"
)

// Default service endpoints.
const (
	DefaultGitHubAPI   = "https://api.github.com"
	DefaultNpmRegistry = "https://registry.npmjs.org"
)

// ErrInvalidToken is returned when a service rejects a token.
var ErrInvalidToken = errors.New("token was rejected")

// Verifier checks tokens against GitHub and the npm registry.
type Verifier struct {
	GitHubAPI   string
	NpmRegistry string
	Client      *http.Client
}

// New returns a Verifier for the public GitHub API and npm registry.
func New() *Verifier {
	return &Verifier{
		GitHubAPI:   DefaultGitHubAPI,
		NpmRegistry: DefaultNpmRegistry,
	}
}

// GitHubUser returns the login of the user owning token.
func (v *Verifier) GitHubUser(ctx context.Context, token string) (string, error) {
	return v.whoami(ctx, "GitHub", v.GitHubAPI, "/user", "token "+token, "login")
}

// NpmUser returns the npm username owning token.
func (v *Verifier) NpmUser(ctx context.Context, token string) (string, error) {
	return v.whoami(ctx, "npm", v.NpmRegistry, "/-/whoami", "Bearer "+token, "username")
}

func (v *Verifier) whoami(ctx context.Context, service, baseURL, path, authorization, field string) (string, error) {
	var buf bytes.Buffer

	b := requests.
		URL(baseURL).
		Path(path).
		Header("Authorization", authorization).
		Accept("application/json").
		ToBytesBuffer(&buf)
	if v.Client != nil {
		b = b.Client(v.Client)
	}

	if err := b.Fetch(ctx); err != nil {
		if requests.HasStatusErr(err, http.StatusUnauthorized, http.StatusForbidden) {
			return "", fmt.Errorf("%s: %w", service, ErrInvalidToken)
		}
		return "", fmt.Errorf("%s: %w", service, err)
	}

	name := gjson.GetBytes(buf.Bytes(), field)
	if !name.Exists() || name.String() == "" {
		return "", fmt.Errorf("%s: unexpected response: missing %s", service, field)
	}

	return name.String(), nil
}
