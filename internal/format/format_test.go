package format

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"telegram-report-bot/internal/models"
)

func makeReports(n int) []models.ReportView {
	res := make([]models.ReportView, n)
	for i := range res {
		res[i] = models.ReportView{
			Report: models.Report{
				Date:         time.Date(2024, 1, 10, 9+i%12, 0, 0, 0, time.UTC),
				Cleaners:     fmt.Sprintf("горничная-%d", i),
				Helpers:      fmt.Sprintf("подсобный-%d", i),
				Payments:     fmt.Sprintf("доплата-%d", i),
				Malfunctions: fmt.Sprintf("поломка-%d", i),
				ReadyForRent: i%2 == 0,
			},
			AdminName: fmt.Sprintf("админ-%d", i),
			Objects:   []models.Object{{ID: int64(i + 1), Address: fmt.Sprintf("адрес-%d", i)}},
		}
	}
	return res
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, true, "10.01.2024"); got != nil {
		t.Errorf("Render(nil) = %v", got)
	}
}

func TestRenderBatching(t *testing.T) {
	chunks := Render(makeReports(12), true, "10.01.2024")

	// 12 short reports -> 3 batches (5/5/2), each well under the chunk bound
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if !strings.Contains(chunks[0], "всего: 12") {
		t.Errorf("first chunk missing total header:\n%s", chunks[0])
	}
	for i, c := range chunks[:2] {
		if !strings.Contains(c, continuedMark) {
			t.Errorf("chunk %d missing continued marker", i)
		}
	}
	if !strings.Contains(chunks[2], endMark) {
		t.Error("final chunk missing end marker")
	}
	if strings.Contains(chunks[2], continuedMark) {
		t.Error("final chunk has continued marker")
	}

	for i, c := range chunks {
		if n := len([]rune(c)); n > MaxChunk {
			t.Errorf("chunk %d length %d exceeds %d", i, n, MaxChunk)
		}
	}
	if got := strings.Count(chunks[0], "🏠 Объект:"); got != 5 {
		t.Errorf("first batch reports = %d, want 5", got)
	}
	if got := strings.Count(chunks[2], "🏠 Объект:"); got != 2 {
		t.Errorf("last batch reports = %d, want 2", got)
	}
}

func TestRenderRoundTripFieldValues(t *testing.T) {
	reports := makeReports(12)
	all := strings.Join(Render(reports, true, "10.01.2024"), "\n")

	for _, r := range reports {
		for _, field := range []string{r.Cleaners, r.Helpers, r.Payments, r.Malfunctions, r.AdminName} {
			if !strings.Contains(all, field) {
				t.Errorf("output missing %q", field)
			}
		}
	}
}

func TestRenderHidesAdmin(t *testing.T) {
	chunks := Render(makeReports(1), false, "10.01.2024")
	if strings.Contains(chunks[0], "Администратор") {
		t.Error("admin line present with showAdmin=false")
	}
}

func TestFieldTruncation(t *testing.T) {
	long := strings.Repeat("а", 150)
	r := makeReports(1)
	r[0].Malfunctions = long

	out := strings.Join(Render(r, true, "10.01.2024"), "\n")
	if strings.Contains(out, long) {
		t.Error("long field not truncated")
	}
	if !strings.Contains(out, strings.Repeat("а", 100)+"…") {
		t.Error("missing 100-char prefix with ellipsis")
	}
}

func TestSplitChunksLongOutput(t *testing.T) {
	// ~60 reports in one batch would not happen, but a batch of five
	// 100-char fields can still overflow: force it with a tiny limit.
	text := strings.Repeat("строка\n", 40)
	chunks := splitChunks(strings.TrimRight(text, "\n"), 50)

	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want several", len(chunks))
	}
	for i, c := range chunks {
		if n := len([]rune(c)); n > 50 {
			t.Errorf("chunk %d length %d", i, n)
		}
	}
	joined := strings.ReplaceAll(strings.Join(chunks, "\n"), "\n", "")
	if joined != strings.ReplaceAll(strings.TrimRight(text, "\n"), "\n", "") {
		t.Error("content lost while splitting")
	}
}

func TestSplitChunksHardSplitsOversizedLine(t *testing.T) {
	line := strings.Repeat("x", 120)
	chunks := splitChunks(line, 50)

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if strings.Join(chunks, "") != line {
		t.Error("hard split lost content")
	}
}
