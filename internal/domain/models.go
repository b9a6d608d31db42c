package domain

import "encoding/json"

// Participant представляет одного уникального автора сообщений в чате.
type Participant struct {
	// UserID — стабильный идентификатор с платформы (обычно только цифры).
	// Заполняется только для JSON-экспортов, где у автора есть явный id.
	UserID string
	// Username — ник без ведущего '@'. Заполняется, только если само поле
	// автора в экспорте начинается с '@'.
	Username string
	// FullName — отображаемое имя в том виде, в котором оно встретилось в экспорте.
	FullName string
	// Bio зарезервировано под будущее обогащение. Парсеры его не заполняют.
	Bio string
}

// ParseResult — результат разбора ровно одного файла экспорта.
type ParseResult struct {
	// Participants в порядке первого появления, по одной записи на уникальный
	// ключ идентичности.
	Participants []Participant
	// Mentions в порядке первого появления, без ведущего '@'. Написание
	// сохраняется как при первой встрече, дубликаты убраны без учета регистра.
	Mentions []string
	// TotalMessages — количество элементов, классифицированных как настоящие
	// сообщения (не сервисные события).
	TotalMessages int
}

// Message представляет один элемент массива messages в JSON-экспорте.
// Поля идентификаторов оставлены сырыми: в зависимости от версии экспорта
// from_id бывает строкой ("user12345") или числом.
type Message struct {
	Type         string          `json:"type"`
	From         string          `json:"from"`
	FromID       json.RawMessage `json:"from_id"`
	Actor        string          `json:"actor"`
	ActorID      json.RawMessage `json:"actor_id"`
	Text         json.RawMessage `json:"text"` // строка или массив фрагментов
	TextEntities []TextEntity    `json:"text_entities"`
}

// TextEntity представляет "богатую" часть текста (упоминание, ссылка и т.д.).
type TextEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
