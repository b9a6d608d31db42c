package services

import (
	"testing"

	"telegram-export-roster/internal/domain"
)

func TestIsDeletedName(t *testing.T) {
	deleted := []string{
		"Deleted Account",
		"deleted account",
		"DELETED ACCOUNT",
		"  Deleted Account  ",
		"Удалённый аккаунт",
		"удаленный аккаунт",
	}
	for _, name := range deleted {
		if !IsDeletedName(name) {
			t.Errorf("Ожидалось, что %q распознается как удаленный аккаунт", name)
		}
	}

	alive := []string{"John Doe", "", "Account", "Deleted"}
	for _, name := range alive {
		if IsDeletedName(name) {
			t.Errorf("Не ожидалось, что %q распознается как удаленный аккаунт", name)
		}
	}
}

func TestIdentityKey(t *testing.T) {
	t.Run("UserID имеет высший приоритет", func(t *testing.T) {
		key := IdentityKey(domain.Participant{UserID: "123", Username: "Carl", FullName: "Carl X"})
		if key != "id:123" {
			t.Errorf("Ожидался ключ 'id:123', получено %q", key)
		}
	})

	t.Run("Username используется при отсутствии UserID", func(t *testing.T) {
		key := IdentityKey(domain.Participant{Username: "Carl", FullName: "@Carl"})
		if key != "u:carl" {
			t.Errorf("Ожидался ключ 'u:carl', получено %q", key)
		}
	})

	t.Run("FullName используется в последнюю очередь", func(t *testing.T) {
		key := IdentityKey(domain.Participant{FullName: "John Doe"})
		if key != "n:john doe" {
			t.Errorf("Ожидался ключ 'n:john doe', получено %q", key)
		}
	})

	t.Run("Ключи не зависят от регистра имени", func(t *testing.T) {
		a := IdentityKey(domain.Participant{FullName: "John Doe"})
		b := IdentityKey(domain.Participant{FullName: "JOHN DOE"})
		if a != b {
			t.Errorf("Ожидалось совпадение ключей, получено %q и %q", a, b)
		}
	})
}
