package feed

import "pulsewave/app/models"

// Draft is the uncommitted composer input. It never outlives the session.
type Draft struct {
	Content string
	Tags    string
}

// State is the whole client-side feed state: the cached post collection,
// the active tag filter, sync/error status, and the snapshots backing
// in-flight optimistic reactions. It is immutable per update: Reduce
// returns a fresh value and never mutates its input.
type State struct {
	Posts      []models.Post
	Draft      Draft
	ActiveTag  string
	Loading    bool
	Submitting bool
	Fallback   bool
	SyncError  string
	FormError  string

	// pending maps postID+":"+field to the full pre-action snapshot for
	// each reaction still awaiting the server.
	pending map[string][]models.Post
}

// NewState returns the initial loading state.
func NewState() State {
	return State{Loading: true, Fallback: true}
}

// Visible returns the posts matching the active tag filter, or every post
// when no filter is set.
func (s State) Visible() []models.Post {
	if s.ActiveTag == "" {
		return s.Posts
	}
	var visible []models.Post
	for _, post := range s.Posts {
		for _, tag := range post.Tags {
			if tag == s.ActiveTag {
				visible = append(visible, post)
				break
			}
		}
	}
	return visible
}

// Event is a feed state transition trigger.
type Event interface {
	isEvent()
}

// FetchStarted begins a feed refresh.
type FetchStarted struct{}

// FetchSucceeded delivers a fresh post collection from the server.
// Fallback and Message mirror the response body.
type FetchSucceeded struct {
	Posts    []models.Post
	Fallback bool
	Message  string
}

// FetchFailed reports an unreachable server; Seeds is the local fixed set
// to show instead.
type FetchFailed struct {
	Seeds   []models.Post
	Message string
}

// DraftChanged records composer edits.
type DraftChanged struct {
	Content string
	Tags    string
}

// SubmitStarted begins a composer submission.
type SubmitStarted struct{}

// SubmitRejected surfaces a validation or transport failure on the
// composer; the draft is kept for retry.
type SubmitRejected struct {
	Message string
}

// SubmitAccepted prepends the server-confirmed post and clears the draft.
type SubmitAccepted struct {
	Post models.Post
}

// FilterSet activates a tag filter; an empty tag clears it.
type FilterSet struct {
	Tag string
}

// ReactionStarted snapshots the collection and applies the optimistic
// increment for one post/field, before any network round trip.
type ReactionStarted struct {
	PostID string
	Field  string
}

// ReactionReconciled replaces the optimistic post with the canonical
// server-returned version.
type ReactionReconciled struct {
	PostID string
	Field  string
	Post   models.Post
}

// ReactionFailed rolls the whole collection back to the pre-action
// snapshot and surfaces a sync error.
type ReactionFailed struct {
	PostID  string
	Field   string
	Message string
}

func (FetchStarted) isEvent()       {}
func (FetchSucceeded) isEvent()     {}
func (FetchFailed) isEvent()        {}
func (DraftChanged) isEvent()       {}
func (SubmitStarted) isEvent()      {}
func (SubmitRejected) isEvent()     {}
func (SubmitAccepted) isEvent()     {}
func (FilterSet) isEvent()          {}
func (ReactionStarted) isEvent()    {}
func (ReactionReconciled) isEvent() {}
func (ReactionFailed) isEvent()     {}

// Reduce is the pure state-transition function behind the feed store. It is
// independent of the transport: the client turns network outcomes into
// events and feeds them through here sequentially.
func Reduce(state State, event Event) State {
	switch ev := event.(type) {
	case FetchStarted:
		state.Loading = true

	case FetchSucceeded:
		state.Posts = clonePosts(ev.Posts)
		state.Fallback = ev.Fallback
		state.SyncError = ev.Message
		state.Loading = false

	case FetchFailed:
		state.Posts = clonePosts(ev.Seeds)
		state.Fallback = true
		state.SyncError = ev.Message
		state.Loading = false

	case DraftChanged:
		state.Draft = Draft{Content: ev.Content, Tags: ev.Tags}

	case SubmitStarted:
		state.Submitting = true
		state.FormError = ""

	case SubmitRejected:
		state.Submitting = false
		state.FormError = ev.Message

	case SubmitAccepted:
		posts := make([]models.Post, 0, len(state.Posts)+1)
		posts = append(posts, clonePost(ev.Post))
		posts = append(posts, clonePosts(state.Posts)...)
		state.Posts = posts
		state.Draft = Draft{}
		state.Submitting = false
		state.SyncError = ""
		state.Fallback = false
		if state.ActiveTag != "" && !hasTag(ev.Post, state.ActiveTag) {
			state.ActiveTag = ""
		}

	case FilterSet:
		state.ActiveTag = ev.Tag

	case ReactionStarted:
		key := reactionKey(ev.PostID, ev.Field)
		if _, inFlight := state.pending[key]; inFlight {
			// one optimistic update per post/field at a time
			return state
		}
		snapshot := clonePosts(state.Posts)
		posts := clonePosts(state.Posts)
		for i := range posts {
			if posts[i].ID == ev.PostID {
				if err := posts[i].Bump(ev.Field); err != nil {
					return state
				}
				break
			}
		}
		state.Posts = posts
		state.pending = clonePending(state.pending)
		state.pending[key] = snapshot

	case ReactionReconciled:
		posts := clonePosts(state.Posts)
		for i := range posts {
			if posts[i].ID == ev.Post.ID {
				posts[i] = clonePost(ev.Post)
				break
			}
		}
		state.Posts = posts
		state.pending = clonePending(state.pending)
		delete(state.pending, reactionKey(ev.PostID, ev.Field))

	case ReactionFailed:
		key := reactionKey(ev.PostID, ev.Field)
		if snapshot, inFlight := state.pending[key]; inFlight {
			state.Posts = snapshot
		}
		state.SyncError = ev.Message
		state.pending = clonePending(state.pending)
		delete(state.pending, key)
	}

	return state
}

func reactionKey(postID, field string) string {
	return postID + ":" + field
}

func hasTag(post models.Post, tag string) bool {
	for _, t := range post.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func clonePost(post models.Post) models.Post {
	if post.Tags != nil {
		post.Tags = append([]string(nil), post.Tags...)
	}
	return post
}

func clonePosts(posts []models.Post) []models.Post {
	cloned := make([]models.Post, len(posts))
	for i := range posts {
		cloned[i] = clonePost(posts[i])
	}
	return cloned
}

func clonePending(pending map[string][]models.Post) map[string][]models.Post {
	cloned := make(map[string][]models.Post, len(pending)+1)
	for key, snapshot := range pending {
		cloned[key] = snapshot
	}
	return cloned
}
