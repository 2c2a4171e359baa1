package usecase

import (
	"context"
	"errors"
	"strings"

	"connectus/internal/infrastructure/assistant"
)

var ErrAssistantUnavailable = errors.New("assistant unavailable")

type ChatUsecase interface {
	Ask(ctx context.Context, message string) (string, error)
}

type Chat struct {
	responder assistant.Responder
}

func NewChatUsecase(responder assistant.Responder) *Chat {
	return &Chat{responder: responder}
}

func (u *Chat) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrInvalidInput
	}
	if u.responder == nil {
		return "", ErrAssistantUnavailable
	}

	reply, err := u.responder.Respond(ctx, message)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			return "", ErrAssistantUnavailable
		}
		return "", ErrInternal
	}
	return reply, nil
}
