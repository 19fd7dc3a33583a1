package models

import (
	"time"

	"pulsewave/app/pulse"
)

// PostRow is the persisted shape of a post. Numeric, array, and flag
// columns are nullable in the store, so they are pointers (or a nil slice)
// here; ToPost fills every gap.
type PostRow struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Handle    string    `json:"handle"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	Likes     *int      `json:"likes"`
	Boosts    *int      `json:"boosts"`
	Replies   *int      `json:"replies"`
	AvatarHue *int      `json:"avatar_hue"`
	UserID    *string   `json:"user_id"`
	IsBot     *bool     `json:"is_bot"`
}

// ToPost maps a persisted row to a fully-populated post: nil tags become an
// empty list, nil counters zero, and a nil hue is re-derived from the
// handle. It sits on the read path for every fetched post and never fails.
func (r PostRow) ToPost() Post {
	post := Post{
		ID:        r.ID,
		Author:    r.Author,
		Handle:    r.Handle,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Tags:      r.Tags,
		Likes:     intOrZero(r.Likes),
		Boosts:    intOrZero(r.Boosts),
		Replies:   intOrZero(r.Replies),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if r.AvatarHue != nil {
		post.AvatarHue = *r.AvatarHue
	} else {
		post.AvatarHue = pulse.AvatarHueFromHandle(r.Handle)
	}
	if r.UserID != nil {
		post.UserID = *r.UserID
	}
	if r.IsBot != nil {
		post.IsBot = *r.IsBot
	}
	return post
}

// NewRow builds the persisted shape for a post on the write path.
func NewRow(p Post) PostRow {
	likes, boosts, replies, hue := p.Likes, p.Boosts, p.Replies, p.AvatarHue
	row := PostRow{
		ID:        p.ID,
		Author:    p.Author,
		Handle:    p.Handle,
		Content:   p.Content,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
		Likes:     &likes,
		Boosts:    &boosts,
		Replies:   &replies,
		AvatarHue: &hue,
	}
	if p.UserID != "" {
		userID := p.UserID
		row.UserID = &userID
	}
	if p.IsBot {
		isBot := p.IsBot
		row.IsBot = &isBot
	}
	return row
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
