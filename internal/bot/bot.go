package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"telegram-export-roster/internal/adapters/exporter"
	"telegram-export-roster/internal/adapters/parser"
	"telegram-export-roster/internal/adapters/source"
	"telegram-export-roster/internal/core/services"
	"telegram-export-roster/internal/domain"
	"telegram-export-roster/internal/pkg/config"
	"telegram-export-roster/internal/ports"
)

const (
	startCommand = "start"

	callbackProcess = "process"
	callbackReset   = "reset"
)

// errFileTooBig возвращается при превышении лимита размера скачиваемого файла.
var errFileTooBig = errors.New("file is too big")

// Bot представляет собой основной объект Telegram-бота.
type Bot struct {
	api        *tgbotapi.BotAPI
	cfg        config.BotConfig
	sessions   *SessionStore
	httpClient *http.Client
	jsonParser ports.Parser
	htmlParser ports.Parser
	logger     *slog.Logger
}

// NewBot создает и инициализирует новый экземпляр бота.
func NewBot(cfg config.BotConfig, sessions *SessionStore, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}

	logger.Info("Authorized on account", slog.String("username", api.Self.UserName))

	return &Bot{
		api:      api,
		cfg:      cfg,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		jsonParser: parser.NewJSONParser(),
		htmlParser: parser.NewHTMLParser(),
		logger:     logger,
	}, nil
}

// Start запускает основной цикл обработки обновлений от Telegram.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollingTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Context cancelled, stopping bot...")
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			switch {
			case update.CallbackQuery != nil:
				b.handleCallback(update.CallbackQuery)
			case update.Message != nil:
				b.handleMessage(update.Message)
			}
		}
	}
}

// mainKeyboard собирает основную инлайн-клавиатуру сессии загрузки.
func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Готово (обработать)", callbackProcess),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Сброс", callbackReset),
		),
	)
}

// handleMessage обрабатывает входящее сообщение.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if msg.Document != nil {
		b.handleDocument(msg)
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Пришли файл экспорта истории чата Telegram (JSON или HTML).")
	b.sendMessage(reply)
}

// handleCommand обрабатывает команды.
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case startCommand:
		b.sessions.Reset(msg.Chat.ID)
		replyText := fmt.Sprintf(
			"Пришли файлы экспорта истории чата Telegram (JSON или HTML).\n"+
				"Можно отправить до %d файлов.\n\n"+
				"Когда закончишь — нажми «Готово (обработать)».\n"+
				"Важно: бот обрабатывает файлы на лету и не хранит их.",
			b.cfg.MaxFiles,
		)
		reply := tgbotapi.NewMessage(msg.Chat.ID, replyText)
		reply.ReplyMarkup = mainKeyboard()
		b.sendMessage(reply)
	default:
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Я не знаю такой команды.")
		b.sendMessage(reply)
	}
}

// handleDocument принимает файл экспорта в сессию чата.
func (b *Bot) handleDocument(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	doc := msg.Document
	logger := b.logger.With(slog.Int64("chat_id", chatID))

	if b.sessions.Count(chatID) >= b.cfg.MaxFiles {
		reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Лимит: не более %d файлов. Нажми «Готово» или «Сброс».", b.cfg.MaxFiles))
		reply.ReplyMarkup = mainKeyboard()
		b.sendMessage(reply)
		return
	}

	if doc.FileSize > 0 && int64(doc.FileSize) > b.cfg.MaxFileSize {
		b.sendMessage(tgbotapi.NewMessage(chatID, "Файл слишком большой для обработки в текущих лимитах. Экспортируй меньший диапазон сообщений."))
		return
	}

	format := parser.DetectFormat(doc.FileName)
	if format == parser.FormatUnknown {
		b.sendMessage(tgbotapi.NewMessage(chatID, "Не понимаю формат. Пришли .json или .html файл экспорта Telegram."))
		return
	}

	count := b.sessions.Append(chatID, PendingFile{
		FileID: doc.FileID,
		Name:   doc.FileName,
		Format: format,
	})
	logger.Info("file accepted", slog.String("file_name", doc.FileName), slog.String("format", string(format)), slog.Int("count", count))

	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Файл принят (%d/%d). Можешь отправить ещё или нажать «Готово».", count, b.cfg.MaxFiles))
	reply.ReplyMarkup = mainKeyboard()
	b.sendMessage(reply)
}

// handleCallback обрабатывает нажатия инлайн-кнопок.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case callbackReset:
		b.sessions.Reset(chatID)
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID,
			"Сбросил. Пришли файлы заново (JSON/HTML), затем нажми «Готово».", mainKeyboard())
		b.sendMessage(edit)
		b.answerCallback(query.ID, "")
	case callbackProcess:
		b.processSession(query)
	default:
		b.answerCallback(query.ID, "")
	}
}

// processSession скачивает и разбирает все файлы сессии строго в порядке
// загрузки, объединяет результаты и отправляет их пользователю.
// Любая ошибка скачивания или разбора отменяет всю пачку: частичные
// результаты не отправляются, сессия сбрасывается.
func (b *Bot) processSession(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	files := b.sessions.Take(chatID)

	if len(files) == 0 {
		b.answerCallbackAlert(query.ID, "Сначала пришли хотя бы один файл.")
		return
	}

	batchID := uuid.NewString()
	logger := b.logger.With(slog.Int64("chat_id", chatID), slog.String("batch_id", batchID))
	logger.Info("processing batch", slog.Int("files", len(files)))

	b.sendMessage(tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "Обрабатываю файлы…"))

	results := make([]domain.ParseResult, 0, len(files))
	for _, file := range files {
		data, err := b.downloadDocument(file.FileID)
		if err != nil {
			logger.Error("failed to download file", slog.String("file_name", file.Name), slog.Any("error", err))
			if isFileTooBigErr(err) {
				b.sendMessage(tgbotapi.NewMessage(chatID,
					"❌ Файл слишком большой, бот не может его скачать через Telegram Bot API.\n\n"+
						"Что сделать:\n"+
						"1) Экспортируй чат заново в JSON\n"+
						"2) Выключи медиа (фото/видео/файлы)\n"+
						"3) Выбери меньший диапазон сообщений (например последние 1–2 недели)\n\n"+
						"После этого пришли файл(ы) снова и нажми «Готово»."))
			} else {
				b.sendMessage(tgbotapi.NewMessage(chatID,
					"❌ Не удалось скачать/прочитать один из файлов экспорта.\n"+
						"Попробуй экспортировать заново (лучше JSON) и отправить снова."))
			}
			b.finishSession(query.ID)
			return
		}

		result, err := b.parseFile(file, source.NewMemorySource(data))
		if err != nil {
			logger.Error("failed to parse file", slog.String("file_name", file.Name), slog.Any("error", err))
			b.sendMessage(tgbotapi.NewMessage(chatID,
				"❌ Не смог распарсить файл экспорта.\n\n"+
					"Проверь, что это стандартный экспорт Telegram Desktop и формат JSON/HTML.\n"+
					"Если файл очень большой — сделай экспорт меньшего диапазона."))
			b.finishSession(query.ID)
			return
		}

		logger.Info("file parsed",
			slog.String("file_name", file.Name),
			slog.Int("participants", len(result.Participants)),
			slog.Int("messages", result.TotalMessages))
		results = append(results, result)
	}

	merged := services.Merge(results)
	logger.Info("batch merged",
		slog.Int("participants", len(merged.Participants)),
		slog.Int("mentions", len(merged.Mentions)),
		slog.Int("total_messages", merged.TotalMessages))

	b.sendResult(chatID, merged, logger)

	reply := tgbotapi.NewMessage(chatID, "Готово. Можешь прислать новую историю чата.")
	reply.ReplyMarkup = mainKeyboard()
	b.sendMessage(reply)
	b.answerCallback(query.ID, "")
}

// sendResult выбирает представление результата: небольшой список уходит
// текстом, большой — xlsx-документом.
func (b *Bot) sendResult(chatID int64, merged domain.ParseResult, logger *slog.Logger) {
	if len(merged.Participants) < b.cfg.InlineLimit {
		b.sendMessage(tgbotapi.NewMessage(chatID, exporter.RenderInline(merged)))
		return
	}

	workbook, err := exporter.BuildWorkbook(merged)
	if err != nil {
		logger.Error("failed to build workbook", slog.Any("error", err))
		b.sendMessage(tgbotapi.NewMessage(chatID, "Не удалось сгенерировать Excel-файл."))
		return
	}

	document := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "participants.xlsx",
		Bytes: workbook,
	})
	document.Caption = fmt.Sprintf("Участников: %d. Сообщений просмотрено: %d.", len(merged.Participants), merged.TotalMessages)

	if _, err := b.api.Send(document); err != nil {
		logger.Error("failed to send workbook", slog.Any("error", err))
		if isFileTooBigErr(err) {
			b.sendMessage(tgbotapi.NewMessage(chatID,
				"Excel получился слишком большим для отправки через Telegram.\n"+
					"Попробуй экспортировать меньший диапазон сообщений."))
		}
	}
}

// finishSession завершает неудачную обработку: сессия уже забрана через
// Take, остается только закрыть callback.
func (b *Bot) finishSession(callbackID string) {
	b.answerCallback(callbackID, "")
}

// downloadDocument скачивает файл из Telegram в память. Размер ограничен
// лимитом из конфигурации.
func (b *Bot) downloadDocument(fileID string) ([]byte, error) {
	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get file direct url: %w", err)
	}

	resp, err := b.httpClient.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s while downloading file", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, b.cfg.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	if int64(len(data)) > b.cfg.MaxFileSize {
		return nil, errFileTooBig
	}

	return data, nil
}

// parseFile забирает данные из источника и разбирает их парсером,
// соответствующим формату файла.
func (b *Bot) parseFile(file PendingFile, src ports.DataSource) (domain.ParseResult, error) {
	data, err := src.Fetch()
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("failed to fetch export data: %w", err)
	}

	switch file.Format {
	case parser.FormatJSON:
		return b.jsonParser.Parse(data)
	case parser.FormatHTML:
		return b.htmlParser.Parse(data)
	default:
		return domain.ParseResult{}, fmt.Errorf("unsupported export format %q", file.Format)
	}
}

// isFileTooBigErr распознает ошибку превышения лимита размера файла,
// как локальную, так и пришедшую от Bot API.
func isFileTooBigErr(err error) bool {
	if errors.Is(err, errFileTooBig) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "file is too big")
}

func (b *Bot) sendMessage(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message", slog.Any("error", err))
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Error("failed to answer callback", slog.Any("error", err))
	}
}

func (b *Bot) answerCallbackAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		b.logger.Error("failed to answer callback", slog.Any("error", err))
	}
}
