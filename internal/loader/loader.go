// Package loader reads timeline items from delimited data files.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"timelane/internal/timeline"
)

// columns is the expected header set. Matching is case-insensitive and
// order-independent; description and url are optional.
var required = []string{"series", "kind", "title", "begin", "end"}

// Load reads and parses a CSV data file. A read failure is fatal to the
// host: there is no partial result and no retry.
func Load(path string) ([]timeline.TimeItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse reads CSV records with columns series, kind, title, begin, end,
// description, url. Kind is a small integer code (1=instant, 2=interval).
// Dates may be RFC 3339, YYYY-MM-DD, or a bare year; malformed or empty
// dates parse to absent. Records without a valid begin time or with an
// unknown kind code cannot be laid out and are skipped with a log line
// rather than failing the load.
func Parse(r io.Reader) ([]timeline.TimeItem, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := columnMap[col]; !ok {
			return nil, fmt.Errorf("column %q not found in data file, have %v", col, header)
		}
	}

	var items []timeline.TimeItem
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		it := parseRecord(record, columnMap, line)
		if it == nil {
			continue
		}
		items = append(items, *it)
	}
	return items, nil
}

func parseRecord(record []string, columnMap map[string]int, line int) *timeline.TimeItem {
	field := func(name string) string {
		i, ok := columnMap[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	code, err := strconv.Atoi(field("kind"))
	if err != nil || !timeline.Kind(code).Valid() {
		// Skip rather than fail: a reloaded file with one bad row should not
		// take the loaded data set down with it.
		log.Printf("loader: line %d: unknown kind code %q, skipping item", line, field("kind"))
		return nil
	}

	begin := timeline.ParseDate(field("begin"))
	if begin == nil {
		log.Printf("loader: line %d: no parseable begin date %q, skipping item", line, field("begin"))
		return nil
	}

	it := timeline.TimeItem{
		ID:          fmt.Sprintf("item-%d", line),
		Series:      field("series"),
		Kind:        timeline.Kind(code),
		Title:       field("title"),
		Begin:       *begin,
		Description: field("description"),
		URL:         field("url"),
	}
	// An instant's end is always ignored; only intervals carry one.
	if it.Kind == timeline.KindInterval {
		it.End = timeline.ParseDate(field("end"))
	}
	return &it
}
