package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Clark-Hu/theater-movies/internal/repository"
)

const csvDateLayout = "01/02/2006"

// columns of the IMDb movies export, in the order MovieCreateParams needs them.
var csvColumns = []string{
	"names", "date_x", "score", "genre", "overview", "crew",
	"orig_title", "status", "orig_lang", "budget_x", "revenue", "country",
}

// readMovies parses the CSV export. Rows with unparseable numbers or dates are
// skipped and counted rather than failing the whole import.
func readMovies(r io.Reader, limit int) ([]repository.MovieCreateParams, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	index, err := parseHeader(reader)
	if err != nil {
		return nil, 0, err
	}

	var (
		rows    []repository.MovieCreateParams
		skipped int
	)
	for limit <= 0 || len(rows) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, err
		}
		params, ok := parseRecord(record, index)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, params)
	}
	return rows, skipped, nil
}

func parseHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q in csv header", col)
		}
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (repository.MovieCreateParams, bool) {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("names")
	if name == "" {
		return repository.MovieCreateParams{}, false
	}
	date, err := time.Parse(csvDateLayout, field("date_x"))
	if err != nil {
		return repository.MovieCreateParams{}, false
	}
	score, err1 := strconv.ParseFloat(field("score"), 64)
	budget, err2 := strconv.ParseFloat(field("budget_x"), 64)
	revenue, err3 := strconv.ParseFloat(field("revenue"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return repository.MovieCreateParams{}, false
	}

	return repository.MovieCreateParams{
		Name:      name,
		Date:      date,
		Score:     score,
		Genre:     field("genre"),
		Overview:  field("overview"),
		Crew:      field("crew"),
		OrigTitle: field("orig_title"),
		Status:    field("status"),
		OrigLang:  field("orig_lang"),
		Budget:    budget,
		Revenue:   revenue,
		Country:   field("country"),
	}, true
}
