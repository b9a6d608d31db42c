package log

import (
	"context"
	"log/slog"
	"regexp"
)

// telegramTokenRegex находит токены формата botID:token, где ID — числа,
// а token — буквенно-цифровая строка.
var telegramTokenRegex = regexp.MustCompile(`(\bbot\d+:[A-Za-z0-9_-]{35,})`)

// maskTokens заменяет найденные токены на маску.
func maskTokens(text string) string {
	return telegramTokenRegex.ReplaceAllString(text, "bot***:***masked-token***")
}

// TokenMaskerHandler — обертка над slog.Handler, маскирующая токены бота
// в сообщениях и атрибутах. Токен попадает в URL запросов к Bot API,
// поэтому без маскировки он утекает в логи вместе с текстами ошибок.
type TokenMaskerHandler struct {
	handler slog.Handler
}

// NewTokenMaskerHandler создает новый обработчик с маскировкой токенов.
func NewTokenMaskerHandler(handler slog.Handler) *TokenMaskerHandler {
	return &TokenMaskerHandler{handler: handler}
}

// NewMaskedLogger создает slog.Logger поверх обработчика с маскировкой.
func NewMaskedLogger(handler slog.Handler) *slog.Logger {
	return slog.New(NewTokenMaskerHandler(handler))
}

// Enabled реализует интерфейс slog.Handler.
func (h *TokenMaskerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle реализует интерфейс slog.Handler.
func (h *TokenMaskerHandler) Handle(ctx context.Context, record slog.Record) error {
	// Запись собирается заново: копирование исходной оставило бы в ней
	// немаскированные атрибуты рядом с маскированными.
	r := slog.NewRecord(record.Time, record.Level, maskTokens(record.Message), record.PC)

	record.Attrs(func(a slog.Attr) bool {
		r.AddAttrs(slog.Attr{Key: a.Key, Value: maskValue(a.Value)})
		return true
	})

	return h.handler.Handle(ctx, r)
}

// WithAttrs реализует интерфейс slog.Handler.
func (h *TokenMaskerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = slog.Attr{Key: attr.Key, Value: maskValue(attr.Value)}
	}
	return &TokenMaskerHandler{handler: h.handler.WithAttrs(masked)}
}

// WithGroup реализует интерфейс slog.Handler.
func (h *TokenMaskerHandler) WithGroup(name string) slog.Handler {
	return &TokenMaskerHandler{handler: h.handler.WithGroup(name)}
}

// maskValue рекурсивно маскирует значения атрибутов.
func maskValue(value slog.Value) slog.Value {
	switch value.Kind() {
	case slog.KindString:
		return slog.StringValue(maskTokens(value.String()))
	case slog.KindAny:
		// Ошибки приводим к строке и тоже маскируем: текст ошибки HTTP-клиента
		// содержит полный URL запроса.
		if err, ok := value.Any().(error); ok {
			return slog.StringValue(maskTokens(err.Error()))
		}
		return value
	case slog.KindGroup:
		group := value.Group()
		masked := make([]slog.Attr, len(group))
		for i, attr := range group {
			masked[i] = slog.Attr{Key: attr.Key, Value: maskValue(attr.Value)}
		}
		return slog.GroupValue(masked...)
	default:
		return value
	}
}
