package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// BusinessDayRange devolve a janela UTC que cobre o dia comercial brasileiro
// (UTC-3): de 03:00:00.000Z do dia até 02:59:59.999Z do dia seguinte.
func BusinessDayRange(date time.Time) (string, string) {
	from := fmt.Sprintf("%sT03:00:00.000Z", date.Format("2006-01-02"))
	to := fmt.Sprintf("%sT02:59:59.999Z", date.AddDate(0, 0, 1).Format("2006-01-02"))
	return from, to
}

// ParseZuluTimestamp interpreta timestamps ISO com sufixo "Z" ou offset com
// dois-pontos. Valor vazio ou não interpretável vira nil, nunca erro.
func ParseZuluTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

// ParseCompactOffsetTimestamp interpreta timestamps ISO com offset sem
// dois-pontos ("-0300"/"-0200"), formato usado nos createdTime de campanha.
// Valor não interpretável vira nil, nunca erro.
func ParseCompactOffsetTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05.000-0700",
		time.RFC3339Nano,
		time.RFC3339,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}
