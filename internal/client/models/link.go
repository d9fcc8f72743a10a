// Package models defines the link resource and the request payloads the
// client sends, together with their client-side validation rules.
package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Link is a server-owned short link. ShortURL and Clicks are computed by the
// server and are read-only from the client's perspective.
type Link struct {
	ID          string    `json:"_id"`
	RedirectURL string    `json:"redirectUrl"`
	CustomAlias string    `json:"customAlias,omitempty"`
	ShortURL    string    `json:"shortUrl"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// CreateLinkRequest is the payload for creating a short link.
type CreateLinkRequest struct {
	RedirectURL string `json:"redirectUrl" validate:"required,url"`
	CustomAlias string `json:"customAlias,omitempty" validate:"omitempty,max=20,linkalias"`
}

// UpdateLinkRequest is a partial update of an existing link.
type UpdateLinkRequest struct {
	RedirectURL string `json:"redirectUrl,omitempty" validate:"omitempty,url"`
	CustomAlias string `json:"customAlias,omitempty" validate:"omitempty,max=20,linkalias"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up payload.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var aliasRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// customAlias charset matches what the server accepts
	if err := v.RegisterValidation("linkalias", func(fl validator.FieldLevel) bool {
		return aliasRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// messages shown for the first failed rule, keyed by field.tag.
var fieldMessages = map[string]string{
	"RedirectURL.required":  "enter a URL to shorten",
	"RedirectURL.url":       "please enter a valid URL",
	"CustomAlias.max":       "alias must be at most 20 characters",
	"CustomAlias.linkalias": "only letters, numbers, - and _ allowed",
	"Email.required":        "email is required",
	"Email.email":           "please enter a valid email address",
	"Password.required":     "password is required",
	"Password.min":          "password must be at least 6 characters",
	"Username.required":     "username is required",
	"Username.min":          "username must be at least 3 characters",
	"Username.max":          "username must be at most 30 characters",
}

func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			return errors.New(msg)
		}
		return fmt.Errorf("invalid value for %s", fe.Field())
	}
	return err
}

func (r CreateLinkRequest) Validate() error { return checkStruct(r) }
func (r UpdateLinkRequest) Validate() error { return checkStruct(r) }
func (c Credentials) Validate() error       { return checkStruct(c) }
func (r Registration) Validate() error      { return checkStruct(r) }
