// Package format renders report collections into Telegram-sized text.
// Telegram rejects messages over 4096 characters, so batches are re-packed
// into chunks below a safety bound and sent one by one.
package format

import (
	"fmt"
	"strings"

	"telegram-report-bot/internal/models"
)

const (
	// MaxChunk bounds one outbound message.
	MaxChunk = 4000
	// BatchSize is how many reports share one batch before a "continued"
	// marker is inserted.
	BatchSize = 5
	// maxField bounds a single free-text field on display.
	maxField = 100

	continuedMark = "⏩ Продолжение следует..."
	endMark       = "✅ Конец списка"
)

// Render produces the ordered message chunks for a report listing.
// label is the day or range caption; showAdmin adds the submitter line,
// used for the owner views and the daily summary.
func Render(reports []models.ReportView, showAdmin bool, label string) []string {
	if len(reports) == 0 {
		return nil
	}

	var batches []string
	for start := 0; start < len(reports); start += BatchSize {
		end := start + BatchSize
		if end > len(reports) {
			end = len(reports)
		}

		var b strings.Builder
		if start == 0 {
			fmt.Fprintf(&b, "📊 Отчеты за %s (всего: %d):\n\n", label, len(reports))
		}
		for _, r := range reports[start:end] {
			writeReport(&b, r, showAdmin)
		}
		if end < len(reports) {
			b.WriteString(continuedMark)
		} else {
			b.WriteString(endMark)
		}
		batches = append(batches, b.String())
	}

	var chunks []string
	for _, batch := range batches {
		chunks = append(chunks, splitChunks(batch, MaxChunk)...)
	}
	return chunks
}

func writeReport(b *strings.Builder, r models.ReportView, showAdmin bool) {
	fmt.Fprintf(b, "🏠 Объект: %s\n", objectLine(r))
	if showAdmin {
		fmt.Fprintf(b, "👤 Администратор: %s\n", r.AdminName)
	}
	fmt.Fprintf(b, "🕐 Дата: %s\n", r.Date.Format("02.01.2006 15:04"))
	fmt.Fprintf(b, "🧹 Горничные: %s\n", truncate(r.Cleaners))
	fmt.Fprintf(b, "👷 Подсобные: %s\n", truncate(r.Helpers))
	fmt.Fprintf(b, "💰 Доплаты: %s\n", truncate(r.Payments))
	fmt.Fprintf(b, "🔧 Поломки: %s\n", truncate(r.Malfunctions))
	fmt.Fprintf(b, "✅ Готов к сдаче: %s\n\n", yesNo(r.ReadyForRent))
}

func objectLine(r models.ReportView) string {
	if len(r.Objects) == 0 {
		return "Не указан"
	}
	labels := make([]string, len(r.Objects))
	for i, o := range r.Objects {
		labels[i] = o.Label()
	}
	return strings.Join(labels, ", ")
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxField {
		return s
	}
	return string(runes[:maxField]) + "…"
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return "Нет"
}

// splitChunks packs whole lines greedily into chunks of at most limit
// characters. A single line longer than the limit is hard-split.
func splitChunks(text string, limit int) []string {
	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, strings.TrimRight(cur.String(), "\n"))
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		// +1 for the newline separator
		if curLen > 0 && curLen+len(runes)+1 > limit {
			flush()
		}
		cur.WriteString(string(runes))
		cur.WriteByte('\n')
		curLen += len(runes) + 1
	}
	flush()
	return chunks
}
