package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"telegram-export-roster/internal/core/services"
	"telegram-export-roster/internal/domain"
	"telegram-export-roster/internal/ports"
)

// HTMLParser реализует интерфейс Parser для HTML-экспортов Telegram Desktop.
// Структурированных полей здесь нет, поэтому разбор идет по разметке:
// каждый div.message — одно сообщение, имя автора — первый потомок
// с классом from_name, тело — первый потомок с классом text.
type HTMLParser struct{}

// NewHTMLParser создает новый экземпляр HTMLParser.
func NewHTMLParser() ports.Parser {
	return &HTMLParser{}
}

// Parse разбирает один HTML-экспорт.
func (p *HTMLParser) Parse(data []byte) (domain.ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decodeLossy(data)))
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("failed to parse export html: %w", err)
	}

	var result domain.ParseResult
	seen := make(map[string]struct{})
	var mentions []string

	doc.Find("div.message").Each(func(_ int, block *goquery.Selection) {
		// HTML-экспорт не отличает сервисные события от обычных сообщений
		// на структурном уровне, поэтому считается каждый блок.
		result.TotalMessages++

		fromName := strings.TrimSpace(block.Find(".from_name").First().Text())
		body := strings.Join(strings.Fields(block.Find(".text").First().Text()), " ")

		// Тело сканируется на упоминания даже при отсутствующем авторе.
		mentions = append(mentions, services.ExtractMentions(body)...)

		if fromName == "" || services.IsDeletedName(fromName) {
			return
		}

		// HTML-экспорт не несет ни user_id, ни username: ключ идентичности
		// всегда строится от отображаемого имени.
		participant := domain.Participant{FullName: fromName}
		key := services.IdentityKey(participant)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		result.Participants = append(result.Participants, participant)
	})

	result.Mentions = services.UniqueMentions(mentions)
	return result, nil
}
