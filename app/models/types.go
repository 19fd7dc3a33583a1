package models

import "time"

// Post is a single user- or bot-authored message with tags and reaction
// counters. Counters never go negative and tags hold no duplicates; both
// are enforced at creation and mutation time.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	Handle    string    `json:"handle" validate:"required,startswith=@"`
	Content   string    `json:"content" validate:"required,min=1,max=280"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	Tags      []string  `json:"tags" validate:"dive,required,lowercase"`
	Likes     int       `json:"likes" validate:"gte=0"`
	Boosts    int       `json:"boosts" validate:"gte=0"`
	Replies   int       `json:"replies" validate:"gte=0"`
	AvatarHue int       `json:"avatarHue" validate:"gte=0,lte=359"`
	UserID    string    `json:"userId,omitempty"`
	IsBot     bool      `json:"isBot,omitempty"`
}

// TrendingTopic is a derived ranking entry for one tag across the visible
// post set. Never persisted.
type TrendingTopic struct {
	Tag      string `json:"tag"`
	Count    int    `json:"count"`
	Momentum int    `json:"momentum"`
}

// Insight is one derived community-vitals panel slot.
type Insight struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Meta  string `json:"meta"`
}
