package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"pulsewave/app/models"
	"pulsewave/app/pulse"
)

var (
	validate    = validator.New()
	botHandleRe = regexp.MustCompile(`^@[a-zA-Z0-9_.-]+$`)
)

func init() {
	validate.RegisterValidation("bothandle", func(fl validator.FieldLevel) bool {
		return botHandleRe.MatchString(fl.Field().String())
	})
}

// TagList accepts the tags payload field as either a single string or an
// array of strings.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TagList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("tags must be a string or an array of strings")
	}
	*t = TagList(many)
	return nil
}

// Join flattens the list back into one free-text tags string for parsing.
func (t TagList) Join() string {
	return strings.Join([]string(t), " ")
}

// BotPayload is the untrusted bot-post body. Author and handle fall back to
// the bot identity when omitted.
type BotPayload struct {
	Content string  `json:"content" validate:"required,max=280"`
	Tags    TagList `json:"tags"`
	Author  string  `json:"author"`
	Handle  string  `json:"handle" validate:"omitempty,bothandle"`
}

// CreateBotPost validates the payload and inserts a post flagged is_bot.
func (s *PostService) CreateBotPost(payload BotPayload) (*models.Post, error) {
	if payload.Author == "" {
		payload.Author = "Pulsewave Bot"
	}
	if payload.Handle == "" {
		payload.Handle = "@pulsewave_bot"
	}
	if err := validate.Struct(payload); err != nil {
		return nil, invalidf("Invalid bot post payload: %v", err)
	}

	post := &models.Post{
		Author:    payload.Author,
		Handle:    payload.Handle,
		Content:   payload.Content,
		Tags:      pulse.ParseTags(payload.Tags.Join()),
		AvatarHue: len(payload.Handle) * 13 % 360,
		UserID:    "ai-bot",
		IsBot:     true,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}
