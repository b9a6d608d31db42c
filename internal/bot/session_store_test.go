package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-export-roster/internal/adapters/parser"
)

func TestSessionStore(t *testing.T) {
	t.Run("Append и Count", func(t *testing.T) {
		store := NewSessionStore()

		assert.Equal(t, 0, store.Count(1))
		assert.Equal(t, 1, store.Append(1, PendingFile{FileID: "a", Format: parser.FormatJSON}))
		assert.Equal(t, 2, store.Append(1, PendingFile{FileID: "b", Format: parser.FormatHTML}))
		assert.Equal(t, 2, store.Count(1))
		// Сессии чатов независимы.
		assert.Equal(t, 0, store.Count(2))
	})

	t.Run("Take возвращает файлы в порядке добавления и очищает сессию", func(t *testing.T) {
		store := NewSessionStore()
		store.Append(1, PendingFile{FileID: "a"})
		store.Append(1, PendingFile{FileID: "b"})

		files := store.Take(1)
		require.Len(t, files, 2)
		assert.Equal(t, "a", files[0].FileID)
		assert.Equal(t, "b", files[1].FileID)
		assert.Equal(t, 0, store.Count(1))
	})

	t.Run("Take пустой сессии", func(t *testing.T) {
		store := NewSessionStore()
		assert.Empty(t, store.Take(1))
	})

	t.Run("Reset очищает сессию", func(t *testing.T) {
		store := NewSessionStore()
		store.Append(1, PendingFile{FileID: "a"})
		store.Reset(1)
		assert.Equal(t, 0, store.Count(1))
	})

	t.Run("конкурентный доступ", func(t *testing.T) {
		store := NewSessionStore()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Append(7, PendingFile{FileID: "x"})
				store.Count(7)
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, store.Count(7))
	})
}
