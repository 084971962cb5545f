package service

import (
	"context"
	"unicode/utf8"

	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/rs/zerolog"
)

// Echo output parts.
const (
	EchoPrefix         = "echo: "
	EchoDefaultMessage = "No message provided"
)

// TextService counts characters and echoes messages.
type TextService struct {
	server *server.Server
}

func NewTextService(s *server.Server) *TextService {
	return &TextService{server: s}
}

// Count returns the number of characters (Unicode code points) in text.
func (t *TextService) Count(ctx context.Context, text string) int {
	zerolog.Ctx(ctx).Debug().Str("operation", "count").Msg("counting characters")
	return utf8.RuneCountInString(text)
}

// Echo prefixes message with "echo: ". A nil or empty message is echoed
// as EchoDefaultMessage.
func (t *TextService) Echo(ctx context.Context, message *string) string {
	zerolog.Ctx(ctx).Debug().Str("operation", "echo").Msg("echoing message")

	if message == nil || *message == "" {
		return EchoPrefix + EchoDefaultMessage
	}

	return EchoPrefix + *message
}
