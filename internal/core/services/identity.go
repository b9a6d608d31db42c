package services

import (
	"strings"

	"telegram-export-roster/internal/domain"
)

// deletedNames — сентинельные имена, которыми инструменты экспорта помечают
// удаленные аккаунты. Ключи хранятся в нижнем регистре.
var deletedNames = map[string]struct{}{
	"deleted account":   {},
	"удаленный аккаунт": {},
	"удалённый аккаунт": {},
}

// IsDeletedName сообщает, является ли отображаемое имя заглушкой удаленного
// аккаунта. Сравнение игнорирует регистр и пробелы по краям.
func IsDeletedName(name string) bool {
	_, ok := deletedNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// IdentityKey вычисляет ключ дедупликации участника.
// Приоритет: id пользователя, затем username, затем отображаемое имя.
// Два автора считаются одним участником тогда и только тогда, когда их
// ключи совпадают.
func IdentityKey(p domain.Participant) string {
	switch {
	case p.UserID != "":
		return "id:" + p.UserID
	case p.Username != "":
		return "u:" + strings.ToLower(p.Username)
	default:
		return "n:" + strings.ToLower(p.FullName)
	}
}
