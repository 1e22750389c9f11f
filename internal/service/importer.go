package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Dan9191/fintrack/internal/models"
)

var dayFirstDate = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)

// normalizeImportDate rewrites DD-MM-YYYY to YYYY-MM-DD and leaves other
// formats untouched
func normalizeImportDate(s string) string {
	s = strings.TrimSpace(s)
	if m := dayFirstDate.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return s
}

func column(record []string, i int, fallback string) string {
	if i < len(record) {
		if v := strings.TrimSpace(record[i]); v != "" {
			return v
		}
	}
	return fallback
}

// ImportCSV stores the transactions in a CSV with the columns
// date, description, amount[, category[, type[, paymentMethod]]].
// The first line is a header. Malformed rows and rows with fewer than four
// columns are counted but skipped.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*models.ImportResult, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return &models.ImportResult{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", ErrInvalidInput, err)
	}

	result := &models.ImportResult{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: failed to read CSV: %v", ErrInvalidInput, err)
			}
			result.Total++
			s.log.Warnf("Skipping malformed CSV line %d for user %d: %v", parseErr.Line, userID, parseErr.Err)
			continue
		}
		result.Total++

		if len(record) < 4 {
			continue
		}
		t := &models.Transaction{
			UserID:        userID,
			Date:          normalizeImportDate(record[0]),
			Description:   strings.TrimSpace(record[1]),
			Amount:        strings.TrimSpace(record[2]),
			Category:      column(record, 3, "Other"),
			Type:          strings.ToLower(column(record, 4, "expense")),
			PaymentMethod: column(record, 5, "Unknown"),
		}
		if err := s.repo.CreateTransaction(ctx, t); err != nil {
			s.log.Warnf("Skipping CSV row %d for user %d: %v", result.Total, userID, err)
			continue
		}
		result.Imported++
	}

	s.log.Infof("Imported %d of %d CSV rows for user %d", result.Imported, result.Total, userID)
	return result, nil
}
