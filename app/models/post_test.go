package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:        "p-test",
		Author:    "Aki Tanaka",
		Handle:    "@aki_design",
		Content:   "shipping at midnight again",
		CreatedAt: time.Now(),
		Tags:      []string{"shipdaily"},
		AvatarHue: 210,
	}
}

func TestPostValidate(t *testing.T) {
	t.Run("valid post passes", func(t *testing.T) {
		assert.NoError(t, validPost().Validate())
	})

	t.Run("missing content fails", func(t *testing.T) {
		post := validPost()
		post.Content = ""
		assert.Error(t, post.Validate())
	})

	t.Run("handle must start with at", func(t *testing.T) {
		post := validPost()
		post.Handle = "aki_design"
		assert.Error(t, post.Validate())
	})

	t.Run("negative counters fail", func(t *testing.T) {
		post := validPost()
		post.Likes = -1
		assert.Error(t, post.Validate())
	})

	t.Run("hue outside range fails", func(t *testing.T) {
		post := validPost()
		post.AvatarHue = 360
		assert.Error(t, post.Validate())
	})

	t.Run("zero creation time fails", func(t *testing.T) {
		post := validPost()
		post.CreatedAt = time.Time{}
		assert.Error(t, post.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	t.Run("stamps creation time and derives hue", func(t *testing.T) {
		post := &Post{Handle: "@aki_design"}
		post.BeforeCreate()
		assert.False(t, post.CreatedAt.IsZero())
		assert.NotNil(t, post.Tags)
		assert.GreaterOrEqual(t, post.AvatarHue, 0)
		assert.Less(t, post.AvatarHue, 360)
	})

	t.Run("preserves an explicit creation time", func(t *testing.T) {
		created := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
		post := &Post{Handle: "@aki_design", CreatedAt: created}
		post.BeforeCreate()
		assert.Equal(t, created, post.CreatedAt)
	})
}

func TestPostBump(t *testing.T) {
	post := validPost()

	assert.NoError(t, post.Bump(FieldLikes))
	assert.NoError(t, post.Bump(FieldBoosts))
	assert.NoError(t, post.Bump(FieldReplies))
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, 1, post.Boosts)
	assert.Equal(t, 1, post.Replies)

	assert.Error(t, post.Bump("content"))
	assert.Error(t, post.Bump(""))
}

func TestIsReactionField(t *testing.T) {
	assert.True(t, IsReactionField("likes"))
	assert.True(t, IsReactionField("boosts"))
	assert.True(t, IsReactionField("replies"))
	assert.False(t, IsReactionField("content"))
	assert.False(t, IsReactionField("Likes"))
	assert.False(t, IsReactionField(""))
}
