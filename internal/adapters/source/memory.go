package source

import (
	"fmt"

	"telegram-export-roster/internal/ports"
)

// MemorySource реализует интерфейс DataSource для данных, уже находящихся
// в памяти (например, скачанных из Telegram).
type MemorySource struct {
	data []byte
}

// NewMemorySource создает новый экземпляр MemorySource.
func NewMemorySource(data []byte) ports.DataSource {
	return &MemorySource{data: data}
}

// Fetch возвращает копию данных, чтобы вызывающая сторона не могла
// изменить оригинал.
func (s *MemorySource) Fetch() ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("данные не установлены")
	}

	dataCopy := make([]byte, len(s.data))
	copy(dataCopy, s.data)

	return dataCopy, nil
}
