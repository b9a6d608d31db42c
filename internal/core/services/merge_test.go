package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-export-roster/internal/domain"
)

func TestMerge(t *testing.T) {
	t.Run("объединяет два файла с пересечением участников", func(t *testing.T) {
		fileA := domain.ParseResult{
			Participants: []domain.Participant{
				{UserID: "1", FullName: "Alice"},
				{UserID: "2", FullName: "Bob"},
			},
			Mentions:      []string{"carol"},
			TotalMessages: 3,
		}
		fileB := domain.ParseResult{
			Participants: []domain.Participant{
				{UserID: "3", FullName: "Carol"},
				{UserID: "2", FullName: "Bobby"}, // тот же id, другое имя
			},
			Mentions:      []string{"Carol", "dave"},
			TotalMessages: 5,
		}

		merged := Merge([]domain.ParseResult{fileA, fileB})

		assert.Equal(t, 8, merged.TotalMessages)
		require.Len(t, merged.Participants, 3)
		// Порядок первого появления: файл A, затем файл B.
		assert.Equal(t, "Alice", merged.Participants[0].FullName)
		assert.Equal(t, "Bob", merged.Participants[1].FullName)
		assert.Equal(t, "Carol", merged.Participants[2].FullName)
		// Первое написание упоминания побеждает.
		assert.Equal(t, []string{"carol", "dave"}, merged.Mentions)
	})

	t.Run("первое вхождение ключа побеждает", func(t *testing.T) {
		merged := Merge([]domain.ParseResult{
			{Participants: []domain.Participant{{UserID: "7", FullName: "First Name"}}},
			{Participants: []domain.Participant{{UserID: "7", FullName: "Second Name"}}},
		})

		require.Len(t, merged.Participants, 1)
		assert.Equal(t, "First Name", merged.Participants[0].FullName)
	})

	t.Run("идемпотентность для одного результата", func(t *testing.T) {
		result := domain.ParseResult{
			Participants: []domain.Participant{
				{UserID: "1", FullName: "Alice"},
				{Username: "bob", FullName: "@bob"},
			},
			Mentions:      []string{"Carl", "dave"},
			TotalMessages: 42,
		}

		merged := Merge([]domain.ParseResult{result})

		assert.Equal(t, result.Participants, merged.Participants)
		assert.Equal(t, result.Mentions, merged.Mentions)
		assert.Equal(t, result.TotalMessages, merged.TotalMessages)
	})

	t.Run("пустой вход дает пустой результат", func(t *testing.T) {
		merged := Merge(nil)

		assert.Empty(t, merged.Participants)
		assert.Empty(t, merged.Mentions)
		assert.Zero(t, merged.TotalMessages)
	})

	t.Run("политика дедупликации совпадает с парсерами", func(t *testing.T) {
		// Участник без id из HTML-файла и участник с username из JSON-файла
		// не схлопываются: их ключи идентичности различаются.
		merged := Merge([]domain.ParseResult{
			{Participants: []domain.Participant{{FullName: "carl"}}},
			{Participants: []domain.Participant{{Username: "carl", FullName: "@carl"}}},
		})

		assert.Len(t, merged.Participants, 2)
	})
}
