package parser

import "strings"

// Format обозначает формат файла экспорта.
type Format string

const (
	FormatJSON    Format = "json"
	FormatHTML    Format = "html"
	FormatUnknown Format = "unknown"
)

// DetectFormat классифицирует файл экспорта исключительно по расширению
// имени файла. Содержимое файла при этом не читается.
func DetectFormat(filename string) Format {
	name := strings.ToLower(strings.TrimSpace(filename))
	switch {
	case strings.HasSuffix(name, ".json"):
		return FormatJSON
	case strings.HasSuffix(name, ".html"), strings.HasSuffix(name, ".htm"):
		return FormatHTML
	default:
		return FormatUnknown
	}
}
