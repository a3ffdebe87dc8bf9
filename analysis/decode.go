package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/articlecheck"
)

// DecodeSEOAnalysis parses a model reply into an SEOAnalysis.
// Sources are copied as given; link filtering happens separately.
func DecodeSEOAnalysis(reply string) (*articlecheck.SEOAnalysis, error) {
	fields, items, err := decodeReply(reply)
	if err != nil {
		return nil, err
	}

	out := &articlecheck.SEOAnalysis{
		Score:       SanitizeScore(fields["score"]),
		Suggestions: make([]articlecheck.SEOSuggestion, 0, len(items)),
	}
	for _, item := range items {
		out.Suggestions = append(out.Suggestions, articlecheck.SEOSuggestion{
			Issue:      stringField(item["issue"]),
			Suggestion: stringField(item["suggestion"]),
			Sources:    sourcesField(item["sources"]),
		})
	}
	return out, nil
}

// DecodeFactualAnalysis parses a model reply into a FactualAnalysis.
// Sources are copied as given; link filtering happens separately.
func DecodeFactualAnalysis(reply string) (*articlecheck.FactualAnalysis, error) {
	fields, items, err := decodeReply(reply)
	if err != nil {
		return nil, err
	}

	out := &articlecheck.FactualAnalysis{
		Score:       SanitizeScore(fields["score"]),
		Suggestions: make([]articlecheck.FactualSuggestion, 0, len(items)),
	}
	for _, item := range items {
		out.Suggestions = append(out.Suggestions, articlecheck.FactualSuggestion{
			Claim:      stringField(item["claim"]),
			Issue:      stringField(item["issue"]),
			Correction: stringField(item["correction"]),
			Sources:    sourcesField(item["sources"]),
		})
	}
	return out, nil
}

// SanitizeScore converts a raw score into the [MinScore, MaxScore] range.
// Numbers and numeric strings are rounded and clamped; anything else is 0.
func SanitizeScore(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return articlecheck.MinScore
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) {
			return articlecheck.MinScore
		}
		f = parsed
	}
	f = math.Round(f)
	if f < articlecheck.MinScore {
		return articlecheck.MinScore
	}
	if f > articlecheck.MaxScore {
		return articlecheck.MaxScore
	}
	return int(f)
}

// decodeReply parses the top-level object and its suggestion list.
// A missing or null suggestion list yields no items.
func decodeReply(reply string) (map[string]json.RawMessage, []map[string]json.RawMessage, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, nil, articlecheck.Errorf(articlecheck.EANALYSIS, "empty model reply")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(reply), &fields); err != nil {
		return nil, nil, articlecheck.WrapError(articlecheck.EANALYSIS, err, "invalid JSON in model reply")
	}
	if fields == nil {
		return nil, nil, articlecheck.Errorf(articlecheck.EANALYSIS, "model reply is not a JSON object")
	}

	raw := fields["suggestions"]
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fields, nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, articlecheck.WrapError(articlecheck.EANALYSIS, err, "suggestions must be a JSON array")
	}

	items := make([]map[string]json.RawMessage, 0, len(elems))
	for _, elem := range elems {
		var item map[string]json.RawMessage
		// Non-object entries become suggestions with empty fields.
		_ = json.Unmarshal(elem, &item)
		items = append(items, item)
	}
	return fields, items, nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// sourcesField keeps the non-blank string entries of a sources array.
func sourcesField(raw json.RawMessage) []string {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		if s := strings.TrimSpace(stringField(elem)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
