package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateLinkRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateLinkRequest
		wantErr string
	}{
		{"valid with alias", CreateLinkRequest{RedirectURL: "https://example.com/a/b", CustomAlias: "mylink"}, ""},
		{"valid without alias", CreateLinkRequest{RedirectURL: "http://example.com"}, ""},
		{"missing url", CreateLinkRequest{}, "enter a URL to shorten"},
		{"not a url", CreateLinkRequest{RedirectURL: "not-a-url"}, "please enter a valid URL"},
		{"alias too long", CreateLinkRequest{RedirectURL: "https://example.com", CustomAlias: strings.Repeat("a", 21)}, "alias must be at most 20 characters"},
		{"alias bad charset", CreateLinkRequest{RedirectURL: "https://example.com", CustomAlias: "my link!"}, "only letters, numbers, - and _ allowed"},
		{"alias with dash and underscore", CreateLinkRequest{RedirectURL: "https://example.com", CustomAlias: "my-link_1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, Credentials{Email: "a@b.io", Password: "secret"}.Validate())
	require.EqualError(t, Credentials{Email: "nope", Password: "x"}.Validate(), "please enter a valid email address")
	require.EqualError(t, Credentials{Email: "a@b.io"}.Validate(), "password is required")
}

func TestRegistrationValidate(t *testing.T) {
	require.NoError(t, Registration{Username: "alice", Email: "a@b.io", Password: "secret1"}.Validate())
	require.EqualError(t, Registration{Username: "al", Email: "a@b.io", Password: "secret1"}.Validate(), "username must be at least 3 characters")
	require.EqualError(t, Registration{Username: "alice", Email: "a@b.io", Password: "short"}.Validate(), "password must be at least 6 characters")
}

func TestLinkJSONFieldNames(t *testing.T) {
	l := Link{ID: "64f0", RedirectURL: "https://example.com", CustomAlias: "x", ShortURL: "http://sho.rt/x", Clicks: 3}
	b, err := json.Marshal(l)
	require.NoError(t, err)
	require.Contains(t, string(b), `"_id":"64f0"`)
	require.Contains(t, string(b), `"redirectUrl"`)
	require.Contains(t, string(b), `"shortUrl"`)
}
