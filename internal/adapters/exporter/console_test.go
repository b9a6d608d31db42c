package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-export-roster/internal/domain"
)

func TestConsoleExporter(t *testing.T) {
	t.Run("печатает участников, счетчик и упоминания", func(t *testing.T) {
		var buf bytes.Buffer
		e := &ConsoleExporter{out: &buf}

		err := e.Export(domain.ParseResult{
			Participants: []domain.Participant{
				{Username: "alice", FullName: "Alice A"},
				{FullName: "Bob B"},
			},
			Mentions:      []string{"carl"},
			TotalMessages: 5,
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Alice A")
		assert.Contains(t, out, "@alice")
		assert.Contains(t, out, "n/a")
		assert.Contains(t, out, "Всего сообщений: 5")
		assert.Contains(t, out, "@carl")
	})

	t.Run("пустой результат", func(t *testing.T) {
		var buf bytes.Buffer
		e := &ConsoleExporter{out: &buf}

		err := e.Export(domain.ParseResult{})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Участники не найдены.")
		assert.NotContains(t, buf.String(), "--- Упоминания ---")
	})
}

func TestPad(t *testing.T) {
	assert.Equal(t, "  ", pad("abc", 5))
	assert.Equal(t, "", pad("abcde", 5))
	assert.Equal(t, "", pad("abcdef", 5))
	// Широкие символы занимают две колонки.
	assert.Equal(t, strings.Repeat(" ", 2), pad("中中", 6))
}
