// Package comments parses ExportComments CSV files and folds classifier
// verdicts into a single category per comment.
package comments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"air-relatorios/internal/domain"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrBadCSV = fmt.Errorf("comments csv must have a Comment column: %w", domain.ErrBadInput)

// Row is one non-blank comment of an upload.
type Row struct {
	ExternalID  string
	Username    string
	Name        string
	Text        string
	Likes       int64
	CommentedAt *time.Time
	ProfileURL  string
	CommentURL  string
}

const (
	colComment    = "comment"
	colUsername   = "username"
	colName       = "name"
	colDate       = "date"
	colLikes      = "likes"
	colCommentID  = "comment id"
	colProfileURL = "profile url"
	colCommentURL = "comment url"
)

// ParseCSV reads an ExportComments file. A UTF-8 BOM is tolerated, the
// delimiter may be a comma or a semicolon, and rows with a blank Comment are
// dropped.
func ParseCSV(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to read comments csv: %w", domain.ErrBadInput)
	}
	text := string(raw)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadCSV
		}
		return nil, fmt.Errorf("failed to read comments csv header: %w", domain.ErrBadInput)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	if _, ok := cols[colComment]; !ok {
		return nil, ErrBadCSV
	}

	get := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed comments csv at line %d: %w", line, domain.ErrBadInput)
		}
		text := get(rec, colComment)
		if text == "" {
			continue
		}
		row := Row{
			ExternalID: get(rec, colCommentID),
			Username:   strings.TrimPrefix(get(rec, colUsername), "@"),
			Name:       get(rec, colName),
			Text:       text,
			Likes:      parseCount(get(rec, colLikes)),
			ProfileURL: get(rec, colProfileURL),
			CommentURL: get(rec, colCommentURL),
		}
		if t, ok := parseCommentDate(get(rec, colDate)); ok {
			row.CommentedAt = &t
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func sniffDelimiter(text string) rune {
	first, _, _ := strings.Cut(text, "\n")
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

// parseCount keeps only digits so "1.234" and "1,234" both read as 1234.
func parseCount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseCommentDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "02/01/2006 15:04:05", "02/01/2006 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	if t, err := domain.ParseDateFlex(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
