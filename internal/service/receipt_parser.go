package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"finanzas-ai/internal/models"
)

var (
	fencedJSON       = regexp.MustCompile("(?s)^```(?:json|JSON)?\\s*(.*?)\\s*```$")
	dotThousands     = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
	commaThousands   = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)
	amountNoiseChars = strings.NewReplacer("$", "", "COP", "", " ", "", "\u00a0", "")
)

// parseReceiptReply shapes the model's JSON reply. Any reply that is not
// a JSON object, after removing one surrounding code fence, is a
// ParseError carrying the reply as received.
func parseReceiptReply(text string) (*models.ReceiptExtraction, error) {
	candidate := strings.TrimSpace(text)
	if m := fencedJSON.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if fields == nil {
		return nil, &ParseError{Raw: text, Err: errors.New("reply is null")}
	}

	extraction := &models.ReceiptExtraction{
		Amount:     parseAmount(fields["amount"]),
		Merchant:   parseMerchant(fields["merchant"]),
		Date:       parseDate(fields["date"]),
		Category:   parseCategory(fields["category"]),
		Confidence: parseConfidence(fields["confidence"]),
	}
	return extraction, nil
}

func parseAmount(raw json.RawMessage) *float64 {
	if v, ok := rawNumber(raw); ok {
		return &v
	}
	if s, ok := rawString(raw); ok {
		if v, ok := parseAmountString(s); ok {
			return &v
		}
	}
	return nil
}

// parseAmountString reads amounts written with Colombian separators
// ("45.000", "$ 12.500,50") as well as plain decimals ("12.50").
func parseAmountString(s string) (float64, bool) {
	s = amountNoiseChars.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if commaThousands.MatchString(s) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if dotThousands.MatchString(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseMerchant(raw json.RawMessage) *string {
	s, ok := rawString(raw)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// parseDate keeps only valid calendar dates, accepting a timestamp by
// its date part.
func parseDate(raw json.RawMessage) *string {
	s, ok := rawString(raw)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return nil
	}
	return &s
}

func parseCategory(raw json.RawMessage) *models.Category {
	s, ok := rawString(raw)
	if !ok {
		return nil
	}
	c, ok := models.ParseCategory(s)
	if !ok {
		return nil
	}
	return &c
}

// parseConfidence falls back to the default for absent, null, zero and
// non-numeric values, and clamps the rest to [0,1].
func parseConfidence(raw json.RawMessage) float64 {
	v, ok := rawNumber(raw)
	if !ok {
		if s, isString := rawString(raw); isString {
			v, ok = parseAmountString(s)
		}
	}
	if !ok || v == 0 {
		return models.DefaultConfidence
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func rawNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	if string(raw) == "null" {
		return 0, false
	}
	return v, true
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
