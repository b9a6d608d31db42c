package services

import (
	"regexp"
	"strings"
)

// mentionRegexp находит @-упоминания: символ '@' и последовательность
// букв, цифр или подчеркиваний после него.
var mentionRegexp = regexp.MustCompile(`@([A-Za-z0-9_]+)`)

// ExtractMentions возвращает все упоминания из текста в порядке появления,
// без ведущего '@'. Дубликаты сохраняются: дедупликация выполняется позже,
// на уровне результата разбора. Пустой текст дает пустой результат.
func ExtractMentions(text string) []string {
	if text == "" {
		return nil
	}

	var mentions []string
	for _, match := range mentionRegexp.FindAllStringSubmatch(text, -1) {
		mentions = append(mentions, match[1])
	}
	return mentions
}

// UniqueMentions дедуплицирует упоминания без учета регистра, сохраняя
// написание первого вхождения и порядок первого появления.
func UniqueMentions(mentions []string) []string {
	seen := make(map[string]struct{}, len(mentions))
	var unique []string
	for _, mention := range mentions {
		key := strings.ToLower(mention)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, mention)
	}
	return unique
}
