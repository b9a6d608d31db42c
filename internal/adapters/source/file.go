package source

import (
	"fmt"
	"os"

	"telegram-export-roster/internal/ports"
)

// FileSource реализует интерфейс DataSource для чтения файла экспорта с диска.
type FileSource struct {
	path string
}

// NewFileSource создает новый экземпляр FileSource.
func NewFileSource(path string) ports.DataSource {
	return &FileSource{path: path}
}

// Fetch читает файл по указанному пути и возвращает его содержимое.
func (s *FileSource) Fetch() ([]byte, error) {
	if s.path == "" {
		return nil, fmt.Errorf("не указан путь к файлу")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", s.path, err)
	}

	return data, nil
}
