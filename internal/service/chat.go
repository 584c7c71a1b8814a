package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/coach"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

type ChatRequest struct {
	Text string `json:"text" validate:"required"`
}

func ValidateChatRequest(req *ChatRequest) error {
	return validate.Struct(req)
}

// coachErrorNotice is the synthetic model reply shown when the coaching
// service fails. No automatic retry.
var coachErrorNotice = map[string]string{
	"ar": "عذراً، حدث خطأ في الاتصال. يرجى المحاولة مرة أخرى.",
	"fr": "Désolé, une erreur de connexion s'est produite. Veuillez réessayer.",
}

func newChatMessage(role internal.ChatRole, text string) *internal.ChatMessage {
	return &internal.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// SendChatMessage appends the user's turn, asks the coach for a reply and
// appends either the reply or a localized error notice as a model message.
// Both appended messages are returned in order.
func SendChatMessage(ctx context.Context, repo storage.ChatRepository, client coach.Client, req *ChatRequest, lang string) ([]internal.ChatMessage, error) {
	userMsg := newChatMessage(internal.RoleUser, req.Text)
	if err := repo.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := repo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	replyText, err := client.Reply(ctx, history, lang)
	if err != nil {
		notice, ok := coachErrorNotice[lang]
		if !ok {
			notice = coachErrorNotice["ar"]
		}
		replyText = notice
	}

	modelMsg := newChatMessage(internal.RoleModel, replyText)
	if err := repo.AppendMessage(ctx, modelMsg); err != nil {
		return nil, err
	}
	return []internal.ChatMessage{*userMsg, *modelMsg}, nil
}
