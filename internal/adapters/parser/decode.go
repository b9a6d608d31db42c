package parser

import "strings"

// decodeLossy интерпретирует байты как UTF-8, заменяя некорректные
// последовательности на U+FFFD вместо ошибки. Файлы экспорта изредка
// содержат битые байты, и они не должны срывать разбор целиком.
func decodeLossy(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
