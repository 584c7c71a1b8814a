package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oussamaberchi/Quickkt/internal"
)

type fakeCoach struct {
	reply string
	err   error
	seen  int
}

func (f *fakeCoach) Reply(ctx context.Context, history []internal.ChatMessage, lang string) (string, error) {
	f.seen = len(history)
	return f.reply, f.err
}

func TestSendChatMessageAppendsBothTurns(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCoach{reply: "Tiens bon, l'envie passera."}

	msgs, err := SendChatMessage(context.Background(), store, client, &ChatRequest{Text: "J'ai envie de fumer"}, "fr")
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, internal.RoleUser, msgs[0].Role)
	assert.Equal(t, internal.RoleModel, msgs[1].Role)
	assert.Equal(t, "Tiens bon, l'envie passera.", msgs[1].Text)
	// the user's turn is part of the history sent to the coach
	assert.Equal(t, 1, client.seen)

	history, err := store.ListMessages(context.Background())
	assert.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSendChatMessageCoachFailureYieldsLocalizedNotice(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCoach{err: errors.New("service down")}

	msgs, err := SendChatMessage(context.Background(), store, client, &ChatRequest{Text: "مساعدة"}, "ar")
	assert.NoError(t, err)
	assert.Equal(t, internal.RoleModel, msgs[1].Role)
	assert.Equal(t, coachErrorNotice["ar"], msgs[1].Text)

	// no retry: exactly one model message was appended
	history, _ := store.ListMessages(context.Background())
	assert.Len(t, history, 2)
}
