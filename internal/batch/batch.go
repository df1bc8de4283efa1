package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/pipeline"
)

// outputHeader fixes the column order of the result table.
var outputHeader = []string{"id", "url", "extracted_text", "publication_date", "extraction_method", "status", "error_message"}

// Config names the input columns a batch run operates on.
type Config struct {
	// IDColumn is the identifier column propagated into every result row.
	IDColumn string
	// URLColumns are processed in declared order for each input row.
	URLColumns []string
}

// Extractor resolves one (url, id) pair to one result. Satisfied by
// *pipeline.Extractor.
type Extractor interface {
	ExtractFromURL(ctx context.Context, url, id string) pipeline.Result
}

// Processor walks an input CSV row by row, column by column, and writes one
// output row per (row, URL column) pair. Rows are processed strictly
// sequentially in input order.
type Processor struct {
	Extractor Extractor
}

// ProcessCSV reads inputPath, validates the configured columns against its
// header, extracts every (row, URL column) pair, and writes the accumulated
// results to outputPath. Column validation failures abort before any
// extraction runs and before any output is written. Individual extraction
// failures never abort the run; they become error rows.
func (p *Processor) ProcessCSV(ctx context.Context, inputPath, outputPath string, cfg Config) error {
	if strings.TrimSpace(cfg.IDColumn) == "" {
		return errors.New("id column is required")
	}
	if len(cfg.URLColumns) == 0 {
		return errors.New("at least one url column is required")
	}

	rows, err := readInput(inputPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("input %s is empty", inputPath)
	}

	header := rows[0]
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	idIdx, ok := colIndex[cfg.IDColumn]
	if !ok {
		return fmt.Errorf("id column %q not found in input", cfg.IDColumn)
	}
	var missing []string
	for _, col := range cfg.URLColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("url columns not found in input: %s", strings.Join(missing, ", "))
	}

	log.Info().Int("rows", len(rows)-1).Strs("columns", header).Msg("input loaded")

	total := (len(rows) - 1) * len(cfg.URLColumns)
	results := make([]pipeline.Result, 0, total)
	processed := 0
	for _, row := range rows[1:] {
		id := row[idIdx]
		for _, col := range cfg.URLColumns {
			processed++
			log.Info().
				Str("progress", fmt.Sprintf("%d/%d", processed, total)).
				Str("id", id).
				Str("column", col).
				Msg("processing url")
			results = append(results, p.Extractor.ExtractFromURL(ctx, row[colIndex[col]], id))
		}
	}

	if err := writeOutput(outputPath, results); err != nil {
		return err
	}

	successes := 0
	for _, r := range results {
		if r.Status == pipeline.StatusSuccess {
			successes++
		}
	}
	log.Info().
		Str("output", outputPath).
		Int("total", len(results)).
		Int("success", successes).
		Int("errors", len(results)-successes).
		Msg("batch complete")
	return nil
}

func readInput(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input csv: %w", err)
	}
	return rows, nil
}

func writeOutput(path string, results []pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		record := []string{r.ID, r.URL, r.ExtractedText, r.PublicationDate, r.ExtractionMethod, string(r.Status), r.ErrorMessage}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
