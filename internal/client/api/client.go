// Package api is the HTTP boundary to the Tinylink backend: the link
// resource (list, create, update) and the auth resource (login, register).
// Results are typed; failures are classified into the kinds in errors.go.
package api

import (
	"context"

	"github.com/dmitrijs2005/tinylink/internal/client/models"
)

// Client is the backend interface the rest of the client programs against.
//
// All operations are safe to retry at the caller's discretion except
// CreateLink, which is not idempotent: retrying it creates a duplicate,
// so it must never be auto-retried.
type Client interface {
	ListLinks(ctx context.Context) ([]models.Link, error)
	CreateLink(ctx context.Context, req models.CreateLinkRequest) (*models.Link, error)
	UpdateLink(ctx context.Context, id string, req models.UpdateLinkRequest) (*models.Link, error)

	// Login and Register return the signed session token issued by the server.
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, error)
}
