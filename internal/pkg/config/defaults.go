package config

// Значения по умолчанию для конфигурации приложения.
const (
	DefaultMaxFiles              = 10
	DefaultInlineLimit           = 50
	DefaultMaxFileSize           = 20 << 20 // 20 MiB
	DefaultPollingTimeoutSeconds = 60
	DefaultHTTPTimeoutSeconds    = 30
	DefaultHealthPort            = 8080
)
