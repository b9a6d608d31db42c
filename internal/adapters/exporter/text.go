package exporter

import (
	"sort"
	"strings"

	"telegram-export-roster/internal/domain"
)

// RenderInline формирует текстовый список участников для отправки одним
// сообщением: по строке на участника, @username если он известен, иначе
// отображаемое имя. Список отсортирован по (username, full_name).
func RenderInline(result domain.ParseResult) string {
	participants := make([]domain.Participant, len(result.Participants))
	copy(participants, result.Participants)

	sort.Slice(participants, func(i, j int) bool {
		if participants[i].Username != participants[j].Username {
			return participants[i].Username < participants[j].Username
		}
		return participants[i].FullName < participants[j].FullName
	})

	lines := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Username != "" {
			lines = append(lines, "@"+p.Username)
		} else {
			lines = append(lines, p.FullName)
		}
	}

	return "Участники (по авторам сообщений):\n" + strings.Join(lines, "\n")
}
