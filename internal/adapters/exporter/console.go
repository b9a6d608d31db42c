package exporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"telegram-export-roster/internal/domain"
	"telegram-export-roster/internal/ports"
)

// ConsoleExporter реализует интерфейс Exporter для вывода результата в консоль.
type ConsoleExporter struct {
	out io.Writer
}

// NewConsoleExporter создает новый экземпляр ConsoleExporter, пишущий в stdout.
func NewConsoleExporter() ports.Exporter {
	return &ConsoleExporter{out: os.Stdout}
}

// Export печатает участников выровненным списком, затем счетчик сообщений
// и список упоминаний.
func (e *ConsoleExporter) Export(result domain.ParseResult) error {
	fmt.Fprintln(e.out, "--- Участники чата ---")
	if len(result.Participants) == 0 {
		fmt.Fprintln(e.out, "Участники не найдены.")
	} else {
		nameWidth := 0
		for _, p := range result.Participants {
			if w := runewidth.StringWidth(p.FullName); w > nameWidth {
				nameWidth = w
			}
		}

		for i, p := range result.Participants {
			username := "n/a"
			if p.Username != "" {
				username = "@" + p.Username
			}
			fmt.Fprintf(e.out, "%3d. %s%s  %s\n", i+1, p.FullName, pad(p.FullName, nameWidth), username)
		}
	}

	fmt.Fprintf(e.out, "Всего сообщений: %d\n", result.TotalMessages)

	if len(result.Mentions) > 0 {
		fmt.Fprintln(e.out, "--- Упоминания ---")
		for _, mention := range result.Mentions {
			fmt.Fprintln(e.out, "@"+mention)
		}
	}

	return nil
}

// pad возвращает пробелы, добивающие строку до нужной ширины колонки.
// Ширина считается через runewidth, чтобы не разъезжались CJK-имена.
func pad(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
