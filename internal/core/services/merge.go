package services

import "telegram-export-roster/internal/domain"

// Merge объединяет результаты разбора нескольких файлов в один.
// Участники дедуплицируются по ключу идентичности: первое вхождение
// побеждает, более поздние молча отбрасываются, порядок — порядок первого
// появления по всем файлам. Упоминания дедуплицируются без учета регистра
// с сохранением первого написания. Счетчики сообщений суммируются.
//
// Политика дедупликации та же, что внутри каждого парсера, только
// примененная ко всей пачке файлов.
func Merge(results []domain.ParseResult) domain.ParseResult {
	var merged domain.ParseResult
	seen := make(map[string]struct{})
	var mentions []string

	for _, result := range results {
		for _, p := range result.Participants {
			key := IdentityKey(p)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged.Participants = append(merged.Participants, p)
		}
		mentions = append(mentions, result.Mentions...)
		merged.TotalMessages += result.TotalMessages
	}

	merged.Mentions = UniqueMentions(mentions)
	return merged
}
