package parser

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"telegram-export-roster/internal/core/services"
	"telegram-export-roster/internal/domain"
	"telegram-export-roster/internal/ports"
)

// JSONParser реализует интерфейс Parser для JSON-экспортов Telegram Desktop.
type JSONParser struct{}

// NewJSONParser создает новый экземпляр JSONParser.
func NewJSONParser() ports.Parser {
	return &JSONParser{}
}

// exportEnvelope описывает два известных варианта корня файла экспорта:
// {"messages": [...]} и {"chat_history": {"messages": [...]}}.
type exportEnvelope struct {
	Messages    json.RawMessage `json:"messages"`
	ChatHistory json.RawMessage `json:"chat_history"`
}

// Parse разбирает один JSON-экспорт. Некорректный JSON возвращает ошибку,
// частичный результат при этом не формируется.
func (p *JSONParser) Parse(data []byte) (domain.ParseResult, error) {
	var envelope exportEnvelope
	if err := json.Unmarshal([]byte(decodeLossy(data)), &envelope); err != nil {
		return domain.ParseResult{}, fmt.Errorf("failed to unmarshal export json: %w", err)
	}

	messages := messageList(envelope.Messages)
	if messages == nil {
		var history struct {
			Messages json.RawMessage `json:"messages"`
		}
		if err := json.Unmarshal(envelope.ChatHistory, &history); err == nil {
			messages = messageList(history.Messages)
		}
	}

	var result domain.ParseResult
	seen := make(map[string]struct{})
	var mentions []string

	for _, raw := range messages {
		var msg domain.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			// Элементы массива, не являющиеся объектами сообщения, пропускаются.
			continue
		}
		if msg.Type != "message" {
			// Сервисные события не попадают ни в счетчик, ни в участников,
			// ни в скан упоминаний.
			continue
		}
		result.TotalMessages++

		participant := resolveAuthor(msg)
		if participant.FullName != "" && !services.IsDeletedName(participant.FullName) {
			key := services.IdentityKey(participant)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				result.Participants = append(result.Participants, participant)
			}
		}

		mentions = append(mentions, services.ExtractMentions(flattenText(msg.Text))...)

		// text_entities ловят упоминания, которые plain-text скан мог
		// отформатировать иначе. Дубликаты уберутся ниже.
		for _, entity := range msg.TextEntities {
			if entity.Type == "mention" && strings.HasPrefix(entity.Text, "@") {
				mentions = append(mentions, strings.TrimPrefix(entity.Text, "@"))
			}
		}
	}

	result.Mentions = services.UniqueMentions(mentions)
	return result, nil
}

// messageList пытается интерпретировать сырое значение как массив сообщений.
// Возвращает nil, если значение отсутствует или имеет другой тип.
func messageList(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

// resolveAuthor извлекает автора одного сообщения. Поля в экспортах
// отличаются в зависимости от вида события, поэтому fallback'и:
// сначала from/from_id, затем actor/actor_id.
func resolveAuthor(msg domain.Message) domain.Participant {
	fullName := msg.From
	if fullName == "" {
		fullName = msg.Actor
	}
	fullName = strings.TrimSpace(fullName)

	rawID := msg.FromID
	if !hasAuthorID(rawID) {
		rawID = msg.ActorID
	}

	var userID string
	var idStr string
	if err := json.Unmarshal(rawID, &idStr); err == nil && idStr != "" {
		// Из строкового id оставляем только цифры; если цифр нет вовсе,
		// используем строку как есть. Числовые id у старых экспортов
		// идентификатора не дают.
		if digits := digitsOnly(idStr); digits != "" {
			userID = digits
		} else {
			userID = idStr
		}
	}

	var username string
	if strings.HasPrefix(fullName, "@") {
		// Особенность экспорта: имя, начинающееся с '@', дает username,
		// но FullName сохраняет исходную форму вместе с '@'.
		username = fullName[1:]
	}

	return domain.Participant{
		UserID:   userID,
		Username: username,
		FullName: fullName,
	}
}

// hasAuthorID сообщает, содержит ли сырое поле идентификатора значение.
// Отсутствующее поле, null и пустая строка считаются отсутствием значения.
func hasAuthorID(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	s := string(raw)
	return s != "null" && s != `""`
}

// digitsOnly возвращает строку, составленную только из цифр исходной строки.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// flattenText собирает текст сообщения в одну строку. Поле text в экспорте
// бывает строкой, null или массивом из строк и rich-text фрагментов,
// несущих собственный ключ "text". Фрагменты склеиваются по порядку.
func flattenText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}

	var fragments []json.RawMessage
	if err := json.Unmarshal(raw, &fragments); err != nil {
		return ""
	}

	var b strings.Builder
	for _, fragment := range fragments {
		var part string
		if err := json.Unmarshal(fragment, &part); err == nil {
			b.WriteString(part)
			continue
		}

		var rich struct {
			Text json.RawMessage `json:"text"`
		}
		if err := json.Unmarshal(fragment, &rich); err != nil || len(rich.Text) == 0 {
			continue
		}
		if err := json.Unmarshal(rich.Text, &part); err == nil {
			b.WriteString(part)
		} else {
			// Нестроковые значения (числа и т.п.) пишем литералом.
			b.Write(rich.Text)
		}
	}
	return b.String()
}
