package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pulsewave/app/services"
)

// BotSecretHeader carries the shared secret for server-to-server posting.
const BotSecretHeader = "X-Pulsewave-Bot-Secret"

// BotController handles the bot-posting endpoint used by external
// automation.
type BotController struct {
	postService *services.PostService
	secret      string
}

// NewBotController creates a new BotController. An empty secret disables
// the endpoint entirely.
func NewBotController(postService *services.PostService, secret string) *BotController {
	return &BotController{postService: postService, secret: secret}
}

func (bc *BotController) verifySecret(r *http.Request) bool {
	header := r.Header.Get(BotSecretHeader)
	if header == "" || bc.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(bc.secret)) == 1
}

// Create inserts a bot-authored post after checking the shared secret and
// validating the payload.
func (bc *BotController) Create(w http.ResponseWriter, r *http.Request) {
	if !bc.verifySecret(r) {
		sendError(w, "Unauthorized.", http.StatusUnauthorized)
		return
	}

	var payload services.BotPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid bot post payload.", http.StatusBadRequest)
		return
	}

	if _, err := bc.postService.CreateBotPost(payload); err != nil {
		if errors.Is(err, services.ErrValidation) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[api/bot-post] error: %v", err)
		sendError(w, "Failed to create bot post.", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
