package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Common display formatters and parsers for plain values.

// FrequencyFormatter renders Hz values, switching to kHz at 1000.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser reads "440", "440 Hz" or "1.5 kHz".
func FrequencyParser(str string) (float64, error) {
	s := strings.TrimSpace(str)
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "khz") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-3]), 64)
		if err != nil {
			return 0, err
		}
		return v * 1000, nil
	}
	if strings.HasSuffix(lower, "hz") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return strconv.ParseFloat(s, 64)
}

// DecibelFormatter renders dB values, showing silence below -60 as -inf.
func DecibelFormatter(db float64) string {
	if db <= -60 {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser reads "-6.0 dB" or "-inf dB".
func DecibelParser(str string) (float64, error) {
	s := strings.TrimSpace(str)
	if strings.Contains(strings.ToLower(s), "inf") {
		return -96, nil
	}
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "db") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return strconv.ParseFloat(s, 64)
}

// PercentFormatter renders a [0, 1] value as a percentage.
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f %%", value*100)
}

// PercentParser reads "75 %" into 0.75.
func PercentParser(str string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimSpace(str), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}
