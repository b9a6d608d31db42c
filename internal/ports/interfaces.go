package ports

import "telegram-export-roster/internal/domain"

// DataSource определяет интерфейс для получения байтов файла экспорта.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// Parser определяет интерфейс для разбора одного файла экспорта.
type Parser interface {
	// Parse преобразует сырые байты файла в результат разбора.
	// Частичных результатов не бывает: либо полный разбор, либо ошибка.
	Parse(data []byte) (domain.ParseResult, error)
}

// Exporter определяет интерфейс для вывода итогового результата.
type Exporter interface {
	// Export принимает объединенный результат и выводит его.
	Export(result domain.ParseResult) error
}
