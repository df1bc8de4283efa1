package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/goextract/internal/pipeline"
)

// recordingExtractor succeeds for URLs containing "good" and records call order.
type recordingExtractor struct {
	calls []string
}

func (f *recordingExtractor) ExtractFromURL(_ context.Context, url, id string) pipeline.Result {
	f.calls = append(f.calls, fmt.Sprintf("%s|%s", id, url))
	if strings.TrimSpace(url) == "" {
		return pipeline.Result{ID: id, URL: url, Status: pipeline.StatusError, ErrorMessage: "Empty or invalid URL"}
	}
	if strings.Contains(url, "good") {
		return pipeline.Result{
			ID: id, URL: url,
			ExtractedText:    strings.Repeat("text ", 30),
			PublicationDate:  "2023-01-02",
			ExtractionMethod: "dom-strategy",
			Status:           pipeline.StatusSuccess,
		}
	}
	return pipeline.Result{ID: id, URL: url, Status: pipeline.StatusError, ErrorMessage: "All extraction methods failed"}
}

func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return rows
}

func TestProcessCSV_OneRowPerPairInOrder(t *testing.T) {
	input := writeCSV(t, [][]string{
		{"id", "primary_url", "backup_url"},
		{"1", "https://a.example/good", "https://a.example/bad"},
		{"2", "https://b.example/bad", "https://b.example/good"},
	})
	output := filepath.Join(t.TempDir(), "out.csv")

	ex := &recordingExtractor{}
	p := &Processor{Extractor: ex}
	cfg := Config{IDColumn: "id", URLColumns: []string{"primary_url", "backup_url"}}
	if err := p.ProcessCSV(context.Background(), input, output, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{
		"1|https://a.example/good",
		"1|https://a.example/bad",
		"2|https://b.example/bad",
		"2|https://b.example/good",
	}
	if len(ex.calls) != len(wantOrder) {
		t.Fatalf("expected %d calls, got %d", len(wantOrder), len(ex.calls))
	}
	for i, want := range wantOrder {
		if ex.calls[i] != want {
			t.Fatalf("call %d = %q, want %q", i, ex.calls[i], want)
		}
	}

	rows := readCSV(t, output)
	if len(rows) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d", len(rows))
	}
	wantHeader := "id,url,extracted_text,publication_date,extraction_method,status,error_message"
	if strings.Join(rows[0], ",") != wantHeader {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	// Error rows are kept, attributable to their source pair
	if rows[2][0] != "1" || rows[2][1] != "https://a.example/bad" || rows[2][5] != "error" {
		t.Fatalf("unexpected error row: %v", rows[2])
	}
	if rows[1][5] != "success" || rows[1][4] != "dom-strategy" || rows[1][3] != "2023-01-02" {
		t.Fatalf("unexpected success row: %v", rows[1])
	}
}

func TestProcessCSV_MissingIDColumnAbortsWithoutOutput(t *testing.T) {
	input := writeCSV(t, [][]string{
		{"key", "url"},
		{"1", "https://a.example/good"},
	})
	output := filepath.Join(t.TempDir(), "out.csv")

	p := &Processor{Extractor: &recordingExtractor{}}
	err := p.ProcessCSV(context.Background(), input, output, Config{IDColumn: "id", URLColumns: []string{"url"}})
	if err == nil || !strings.Contains(err.Error(), `id column "id" not found`) {
		t.Fatalf("expected missing-id error, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("no output file may exist after a fatal validation error")
	}
}

func TestProcessCSV_MissingURLColumnsNamed(t *testing.T) {
	input := writeCSV(t, [][]string{
		{"id", "url"},
		{"1", "https://a.example/good"},
	})
	output := filepath.Join(t.TempDir(), "out.csv")

	ex := &recordingExtractor{}
	p := &Processor{Extractor: ex}
	err := p.ProcessCSV(context.Background(), input, output, Config{IDColumn: "id", URLColumns: []string{"url", "mirror_url"}})
	if err == nil || !strings.Contains(err.Error(), "mirror_url") {
		t.Fatalf("expected error naming the missing column, got %v", err)
	}
	if len(ex.calls) != 0 {
		t.Fatalf("no extraction may run when validation fails")
	}
}

func TestProcessCSV_EmptyCellBecomesErrorRow(t *testing.T) {
	input := writeCSV(t, [][]string{
		{"id", "url"},
		{"1", ""},
	})
	output := filepath.Join(t.TempDir(), "out.csv")

	p := &Processor{Extractor: &recordingExtractor{}}
	if err := p.ProcessCSV(context.Background(), input, output, Config{IDColumn: "id", URLColumns: []string{"url"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := readCSV(t, output)
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row")
	}
	if rows[1][5] != "error" || rows[1][6] != "Empty or invalid URL" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestProcessCSV_ConfigValidation(t *testing.T) {
	p := &Processor{Extractor: &recordingExtractor{}}
	if err := p.ProcessCSV(context.Background(), "in.csv", "out.csv", Config{URLColumns: []string{"u"}}); err == nil {
		t.Fatalf("expected error for missing id column config")
	}
	if err := p.ProcessCSV(context.Background(), "in.csv", "out.csv", Config{IDColumn: "id"}); err == nil {
		t.Fatalf("expected error for empty url column list")
	}
}

func TestProcessCSV_MissingInputFile(t *testing.T) {
	p := &Processor{Extractor: &recordingExtractor{}}
	cfg := Config{IDColumn: "id", URLColumns: []string{"url"}}
	if err := p.ProcessCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), "out.csv", cfg); err == nil {
		t.Fatalf("expected error for missing input file")
	}
}
