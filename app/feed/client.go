package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"pulsewave/app/models"
	"pulsewave/app/pulse"
)

// User-visible status messages.
const (
	msgFetchFailed    = "サーバーへの接続に失敗しました。ローカルデータを表示します。"
	msgDraftEmpty     = "まずは一言でもOK。想いを落としてみよう。"
	msgDraftTooLong   = "280文字以内にギュッとまとめてください。"
	msgLoginRequired  = "投稿するにはログインが必要です。"
	msgSubmitFailed   = "投稿に失敗しました。もう一度お試しください。"
	msgNetworkFailed  = "ネットワークに接続できませんでした。"
	msgReactionFailed = "リアクションを保存できませんでした。"
)

// Client drives a Store against the server API. Every call is a single
// attempt: a failure is surfaced through the store and must be re-triggered
// by the user, never retried here.
type Client struct {
	baseURL string
	http    *http.Client
	store   *Store
	token   string
}

// NewClient creates a client for the API at baseURL (no trailing slash).
func NewClient(baseURL string, store *Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
	}
}

// SetToken installs the bearer session token minted by the identity layer.
// An empty token makes the client unauthenticated.
func (c *Client) SetToken(token string) {
	c.token = token
}

type postsResponse struct {
	Posts    []models.Post `json:"posts"`
	Fallback bool          `json:"fallback"`
	Error    string        `json:"error"`
}

type postResponse struct {
	Post  *models.Post `json:"post"`
	Error string       `json:"error"`
}

// Refresh fetches the feed. An unreachable server degrades to the seed set
// with a visible sync message rather than failing the session.
func (c *Client) Refresh(ctx context.Context) error {
	c.store.Dispatch(FetchStarted{})

	var payload postsResponse
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &payload); err != nil {
		c.store.Dispatch(FetchFailed{
			Seeds:   models.SeedPosts(time.Now()),
			Message: msgFetchFailed,
		})
		return err
	}

	c.store.Dispatch(FetchSucceeded{
		Posts:    payload.Posts,
		Fallback: payload.Fallback,
		Message:  payload.Error,
	})
	return nil
}

// Submit validates the current draft locally, mirroring the server rules,
// then posts it. The draft survives a rejection so the user can retry.
func (c *Client) Submit(ctx context.Context) error {
	draft := c.store.State().Draft
	trimmed := strings.TrimSpace(draft.Content)
	if trimmed == "" {
		c.store.Dispatch(SubmitRejected{Message: msgDraftEmpty})
		return fmt.Errorf("draft content is empty")
	}
	if utf8.RuneCountInString(trimmed) > pulse.MaxCharacters {
		c.store.Dispatch(SubmitRejected{Message: msgDraftTooLong})
		return fmt.Errorf("draft content exceeds %d characters", pulse.MaxCharacters)
	}
	if c.token == "" {
		c.store.Dispatch(SubmitRejected{Message: msgLoginRequired})
		return fmt.Errorf("not authenticated")
	}

	c.store.Dispatch(SubmitStarted{})

	body := map[string]string{"content": trimmed, "tags": draft.Tags}
	var payload postResponse
	if err := c.do(ctx, http.MethodPost, "/api/posts", body, &payload); err != nil {
		message := msgNetworkFailed
		if payload.Error != "" {
			message = payload.Error
		}
		c.store.Dispatch(SubmitRejected{Message: message})
		return err
	}
	if payload.Post == nil {
		c.store.Dispatch(SubmitRejected{Message: msgSubmitFailed})
		return fmt.Errorf("server returned no post")
	}

	c.store.Dispatch(SubmitAccepted{Post: *payload.Post})
	return nil
}

// React applies the optimistic increment immediately, then reconciles with
// the server's canonical post, or rolls the collection back wholesale on
// any failure.
func (c *Client) React(ctx context.Context, postID, field string) error {
	c.store.Dispatch(ReactionStarted{PostID: postID, Field: field})

	body := map[string]string{"field": field}
	var payload postResponse
	err := c.do(ctx, http.MethodPatch, "/api/posts/"+postID, body, &payload)
	if err == nil && payload.Post == nil {
		err = fmt.Errorf("server returned no post")
	}
	if err != nil {
		c.store.Dispatch(ReactionFailed{PostID: postID, Field: field, Message: msgReactionFailed})
		return err
	}

	c.store.Dispatch(ReactionReconciled{PostID: postID, Field: field, Post: *payload.Post})
	return nil
}

// do issues one request and decodes the JSON response into out. Non-2xx
// statuses are errors, but the body is still decoded first so callers can
// surface the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
