package bot

import (
	"sync"

	"telegram-export-roster/internal/adapters/parser"
)

// PendingFile — один принятый, но еще не обработанный файл экспорта.
// Хранится только идентификатор файла в Telegram: байты скачиваются
// непосредственно перед обработкой и нигде не сохраняются.
type PendingFile struct {
	FileID string
	Name   string
	Format parser.Format
}

// SessionStore — потокобезопасное in-memory хранилище принятых файлов
// по идентификатору чата. Сессия живет до обработки или сброса.
type SessionStore struct {
	mu    sync.RWMutex
	files map[int64][]PendingFile
}

// NewSessionStore создает новый экземпляр SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		files: make(map[int64][]PendingFile),
	}
}

// Append добавляет файл в сессию чата и возвращает новое количество файлов.
func (s *SessionStore) Append(chatID int64, file PendingFile) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[chatID] = append(s.files[chatID], file)
	return len(s.files[chatID])
}

// Count возвращает количество файлов в сессии чата.
func (s *SessionStore) Count(chatID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files[chatID])
}

// Take забирает все файлы сессии в порядке добавления и очищает ее.
func (s *SessionStore) Take(chatID int64) []PendingFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := s.files[chatID]
	delete(s.files, chatID)
	return files
}

// Reset очищает сессию чата.
func (s *SessionStore) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, chatID)
}
