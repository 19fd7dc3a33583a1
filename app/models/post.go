package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"pulsewave/app/pulse"
)

var validate = validator.New()

// Reaction field names accepted by the increment path. Everything else is
// rejected before touching the store.
const (
	FieldLikes   = "likes"
	FieldBoosts  = "boosts"
	FieldReplies = "replies"
)

// IsReactionField reports whether field belongs to the reaction allow-set.
func IsReactionField(field string) bool {
	switch field {
	case FieldLikes, FieldBoosts, FieldReplies:
		return true
	}
	return false
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.AvatarHue == 0 && p.Handle != "" {
		p.AvatarHue = pulse.AvatarHueFromHandle(p.Handle)
	}
}

// Bump increments one reaction counter by exactly one.
func (p *Post) Bump(field string) error {
	switch field {
	case FieldLikes:
		p.Likes++
	case FieldBoosts:
		p.Boosts++
	case FieldReplies:
		p.Replies++
	default:
		return fmt.Errorf("invalid reaction field %q", field)
	}
	return nil
}
