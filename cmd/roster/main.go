package main

import (
	"fmt"
	"os"

	"telegram-export-roster/internal/adapters/exporter"
	"telegram-export-roster/internal/adapters/parser"
	"telegram-export-roster/internal/adapters/source"
	"telegram-export-roster/internal/core/services"
	"telegram-export-roster/internal/domain"
)

// roster — локальная утилита: разбирает файлы экспорта с диска и печатает
// объединенный список участников в консоль. Удобна для проверки экспортов
// без запуска бота.
func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: roster <export-file> [export-file ...]")
		os.Exit(1)
	}

	jsonParser := parser.NewJSONParser()
	htmlParser := parser.NewHTMLParser()

	results := make([]domain.ParseResult, 0, len(paths))
	for _, path := range paths {
		data, err := source.NewFileSource(path).Fetch()
		if err != nil {
			fmt.Fprintf(os.Stderr, "не удалось прочитать %s: %v\n", path, err)
			os.Exit(1)
		}

		var result domain.ParseResult
		switch parser.DetectFormat(path) {
		case parser.FormatJSON:
			result, err = jsonParser.Parse(data)
		case parser.FormatHTML:
			result, err = htmlParser.Parse(data)
		default:
			err = fmt.Errorf("неизвестный формат (ожидается .json или .html)")
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "не удалось разобрать %s: %v\n", path, err)
			os.Exit(1)
		}

		results = append(results, result)
	}

	merged := services.Merge(results)
	if err := exporter.NewConsoleExporter().Export(merged); err != nil {
		fmt.Fprintf(os.Stderr, "не удалось вывести результат: %v\n", err)
		os.Exit(1)
	}
}
