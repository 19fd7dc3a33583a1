package feed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsewave/app/models"
)

func feedPosts() []models.Post {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	return []models.Post{
		{
			ID: "p-1", Author: "Aki Tanaka", Handle: "@aki_design",
			Content: "first", CreatedAt: now.Add(-1 * time.Hour),
			Tags: []string{"shipdaily"}, Likes: 3, AvatarHue: 210,
		},
		{
			ID: "p-2", Author: "Leo Martinez", Handle: "@leo_makes",
			Content: "second", CreatedAt: now.Add(-2 * time.Hour),
			Tags: []string{"vercel"}, Boosts: 1, AvatarHue: 32,
		},
	}
}

func loadedState() State {
	return Reduce(NewState(), FetchSucceeded{Posts: feedPosts()})
}

func TestReduceFetch(t *testing.T) {
	t.Run("fetch lifecycle", func(t *testing.T) {
		state := NewState()
		assert.True(t, state.Loading)

		state = Reduce(state, FetchSucceeded{Posts: feedPosts(), Fallback: false})
		assert.False(t, state.Loading)
		assert.False(t, state.Fallback)
		assert.Len(t, state.Posts, 2)
		assert.Empty(t, state.SyncError)
	})

	t.Run("failed fetch degrades to seeds with a message", func(t *testing.T) {
		seeds := models.SeedPosts(time.Now())
		state := Reduce(NewState(), FetchFailed{Seeds: seeds, Message: "offline"})
		assert.True(t, state.Fallback)
		assert.Equal(t, "offline", state.SyncError)
		assert.Len(t, state.Posts, len(seeds))
		assert.False(t, state.Loading)
	})

	t.Run("server fallback flag and message carry through", func(t *testing.T) {
		state := Reduce(NewState(), FetchSucceeded{Posts: feedPosts(), Fallback: true, Message: "degraded"})
		assert.True(t, state.Fallback)
		assert.Equal(t, "degraded", state.SyncError)
	})
}

func TestReduceSubmit(t *testing.T) {
	t.Run("accepted post is prepended and the draft cleared", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, DraftChanged{Content: "new post", Tags: "go"})
		state = Reduce(state, SubmitStarted{})
		assert.True(t, state.Submitting)

		post := models.Post{ID: "p-3", Author: "Kana", Handle: "@kana_wave", Content: "new post", Tags: []string{"go"}}
		state = Reduce(state, SubmitAccepted{Post: post})

		assert.False(t, state.Submitting)
		assert.Equal(t, "p-3", state.Posts[0].ID)
		assert.Len(t, state.Posts, 3)
		assert.Equal(t, Draft{}, state.Draft)
		assert.False(t, state.Fallback)
	})

	t.Run("rejection keeps the draft for retry", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, DraftChanged{Content: "too long", Tags: ""})
		state = Reduce(state, SubmitStarted{})
		state = Reduce(state, SubmitRejected{Message: "rejected"})

		assert.False(t, state.Submitting)
		assert.Equal(t, "rejected", state.FormError)
		assert.Equal(t, "too long", state.Draft.Content)
		assert.Len(t, state.Posts, 2)
	})

	t.Run("filter clears when the accepted post lacks the tag", func(t *testing.T) {
		state := Reduce(loadedState(), FilterSet{Tag: "shipdaily"})
		post := models.Post{ID: "p-3", Content: "off topic", Tags: []string{"go"}}
		state = Reduce(state, SubmitAccepted{Post: post})
		assert.Equal(t, "", state.ActiveTag)
	})

	t.Run("filter survives when the accepted post has the tag", func(t *testing.T) {
		state := Reduce(loadedState(), FilterSet{Tag: "shipdaily"})
		post := models.Post{ID: "p-3", Content: "on topic", Tags: []string{"shipdaily"}}
		state = Reduce(state, SubmitAccepted{Post: post})
		assert.Equal(t, "shipdaily", state.ActiveTag)
	})
}

func TestReduceReaction(t *testing.T) {
	t.Run("optimistic increment is visible immediately", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})
		assert.Equal(t, 4, state.Posts[0].Likes)
	})

	t.Run("reconcile swaps in the canonical post", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})

		// server saw a concurrent reaction: the counter jumps past +1
		canonical := state.Posts[0]
		canonical.Likes = 9
		state = Reduce(state, ReactionReconciled{PostID: "p-1", Field: "likes", Post: canonical})

		assert.Equal(t, 9, state.Posts[0].Likes)
	})

	t.Run("failure restores the collection byte for byte", func(t *testing.T) {
		state := loadedState()
		before, err := json.Marshal(state.Posts)
		require.NoError(t, err)

		state = Reduce(state, ReactionStarted{PostID: "p-2", Field: "boosts"})
		assert.Equal(t, 2, state.Posts[1].Boosts)

		state = Reduce(state, ReactionFailed{PostID: "p-2", Field: "boosts", Message: "sync failed"})

		after, err := json.Marshal(state.Posts)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, "sync failed", state.SyncError)
	})

	t.Run("second start on the same post and field is ignored", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})
		state = Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})
		assert.Equal(t, 4, state.Posts[0].Likes)
	})

	t.Run("independent reactions do not share snapshots", func(t *testing.T) {
		state := loadedState()
		state = Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})
		state = Reduce(state, ReactionStarted{PostID: "p-2", Field: "boosts"})

		canonical := state.Posts[0]
		state = Reduce(state, ReactionReconciled{PostID: "p-1", Field: "likes", Post: canonical})

		// the p-2 rollback undoes everything since its own snapshot,
		// which already contained the p-1 increment
		state = Reduce(state, ReactionFailed{PostID: "p-2", Field: "boosts", Message: "sync failed"})
		assert.Equal(t, 4, state.Posts[0].Likes)
		assert.Equal(t, 1, state.Posts[1].Boosts)
	})

	t.Run("unknown post id leaves state untouched", func(t *testing.T) {
		state := loadedState()
		next := Reduce(state, ReactionStarted{PostID: "nope", Field: "likes"})
		assert.Equal(t, state.Posts, next.Posts)
	})

	t.Run("reducer never mutates its input", func(t *testing.T) {
		state := loadedState()
		before, err := json.Marshal(state.Posts)
		require.NoError(t, err)

		Reduce(state, ReactionStarted{PostID: "p-1", Field: "likes"})

		after, err := json.Marshal(state.Posts)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestStateVisible(t *testing.T) {
	state := loadedState()

	assert.Len(t, state.Visible(), 2)

	state = Reduce(state, FilterSet{Tag: "vercel"})
	visible := state.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "p-2", visible[0].ID)

	state = Reduce(state, FilterSet{Tag: ""})
	assert.Len(t, state.Visible(), 2)
}

func TestStoreClose(t *testing.T) {
	store := NewStore()
	store.Dispatch(FetchSucceeded{Posts: feedPosts()})
	assert.Len(t, store.State().Posts, 2)

	store.Close()
	assert.True(t, store.Closed())

	// a late completion after teardown must not write
	store.Dispatch(ReactionStarted{PostID: "p-1", Field: "likes"})
	assert.Equal(t, 3, store.State().Posts[0].Likes)
}
