package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// CallbackParts разбирает callback data вида "prefix:a:b" и проверяет
// количество аргументов после префикса. Последний аргумент получает
// остаток строки целиком: метка слота "15:00" сама содержит двоеточие.
func CallbackParts(data string, argc int) ([]string, error) {
	parts := strings.SplitN(data, ":", argc+1)
	if len(parts) != argc+1 {
		return nil, fmt.Errorf("invalid callback data format: %q", data)
	}
	return parts[1:], nil
}

// ParseUUIDFromCallback извлекает UUID из callback data
// Например: "appt:3f1a..." -> 3f1a...
func ParseUUIDFromCallback(data string) (uuid.UUID, error) {
	args, err := CallbackParts(data, 1)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(args[0])
}
