package bot

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-export-roster/internal/adapters/parser"
	"telegram-export-roster/internal/adapters/source"
	"telegram-export-roster/internal/pkg/config"
)

// newTestBot создает бота без Bot API для тестирования логики без сети.
func newTestBot(cfg config.BotConfig) *Bot {
	return &Bot{
		api:        nil, // сетевые методы в этих тестах не вызываются
		cfg:        cfg,
		sessions:   NewSessionStore(),
		jsonParser: parser.NewJSONParser(),
		htmlParser: parser.NewHTMLParser(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestParseFile(t *testing.T) {
	b := newTestBot(config.BotConfig{})

	t.Run("JSON-файл уходит в JSON-парсер", func(t *testing.T) {
		result, err := b.parseFile(
			PendingFile{Name: "result.json", Format: parser.FormatJSON},
			source.NewMemorySource([]byte(`{"messages":[{"type":"message","from":"John","from_id":"user1","text":"hi"}]}`)),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalMessages)
	})

	t.Run("HTML-файл уходит в HTML-парсер", func(t *testing.T) {
		result, err := b.parseFile(
			PendingFile{Name: "messages.html", Format: parser.FormatHTML},
			source.NewMemorySource([]byte(`<div class="message"><div class="from_name">John</div></div>`)),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalMessages)
	})

	t.Run("неизвестный формат дает ошибку", func(t *testing.T) {
		_, err := b.parseFile(
			PendingFile{Name: "x.bin", Format: parser.FormatUnknown},
			source.NewMemorySource([]byte("data")),
		)
		assert.Error(t, err)
	})

	t.Run("ошибка источника пробрасывается", func(t *testing.T) {
		_, err := b.parseFile(
			PendingFile{Name: "result.json", Format: parser.FormatJSON},
			source.NewMemorySource(nil),
		)
		assert.Error(t, err)
	})

	t.Run("ошибка разбора пробрасывается", func(t *testing.T) {
		_, err := b.parseFile(
			PendingFile{Name: "result.json", Format: parser.FormatJSON},
			source.NewMemorySource([]byte(`{"messages":[`)),
		)
		assert.Error(t, err)
	})
}

func TestIsFileTooBigErr(t *testing.T) {
	assert.True(t, isFileTooBigErr(errFileTooBig))
	assert.True(t, isFileTooBigErr(errors.New("Bad Request: file is too big")))
	assert.True(t, isFileTooBigErr(errors.New("FILE IS TOO BIG")))
	assert.False(t, isFileTooBigErr(errors.New("connection refused")))
}
