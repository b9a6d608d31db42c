package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telegram-export-roster/internal/domain"
)

func TestRenderInline(t *testing.T) {
	t.Run("строка на участника, username при наличии", func(t *testing.T) {
		result := domain.ParseResult{
			Participants: []domain.Participant{
				{FullName: "Zoe"},
				{Username: "bob", FullName: "@bob"},
				{Username: "alice", FullName: "@alice"},
				{FullName: "Adam"},
			},
		}

		text := RenderInline(result)

		// Участники без username (пустая строка) сортируются первыми,
		// между собой — по имени.
		assert.Equal(t,
			"Участники (по авторам сообщений):\n"+
				"Adam\n"+
				"Zoe\n"+
				"@alice\n"+
				"@bob",
			text)
	})

	t.Run("исходный порядок участников не меняется", func(t *testing.T) {
		result := domain.ParseResult{
			Participants: []domain.Participant{
				{FullName: "Zoe"},
				{FullName: "Adam"},
			},
		}

		_ = RenderInline(result)

		assert.Equal(t, "Zoe", result.Participants[0].FullName)
	})

	t.Run("пустой результат дает только заголовок", func(t *testing.T) {
		assert.Equal(t, "Участники (по авторам сообщений):\n", RenderInline(domain.ParseResult{}))
	})
}
