package aiwebhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is returned when an answer matches none of the
// accepted wrapper shapes.
var ErrMalformedResponse = errors.New("malformed AI response")

// unwrap accepts `[{output: {...}}]`, `{output: {...}}`, `[{...}]` and `{...}`
// and returns the innermost object.
func unwrap(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body: %w", ErrMalformedResponse)
	}
	if body[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrMalformedResponse)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("empty array: %w", ErrMalformedResponse)
		}
		body = items[0]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedResponse)
	}
	if out, ok := obj["output"]; ok {
		// Some flows return output as a JSON encoded string.
		var s string
		if json.Unmarshal(out, &s) == nil {
			out = []byte(stripFences(s))
		}
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(out, &inner); err != nil {
			return nil, fmt.Errorf("output: %v: %w", err, ErrMalformedResponse)
		}
		return inner, nil
	}
	return obj, nil
}

func field(obj map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// stripFences removes a ```json fenced block wrapper that chat models like
// to add around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ExtractClassifications parses a classify_comments answer.
func ExtractClassifications(body []byte) ([]Classification, error) {
	obj, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	raw, ok := field(obj, "classificacoes", "classifications")
	if !ok {
		return nil, fmt.Errorf("no classifications: %w", ErrMalformedResponse)
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("classifications: %v: %w", err, ErrMalformedResponse)
	}

	out := make([]Classification, 0, len(items))
	for _, item := range items {
		c := Classification{CommentID: scalarString(item["comment_id"]), Verdicts: map[string]bool{}}
		cats, ok := field(item, "categorias", "categories")
		if !ok {
			out = append(out, c)
			continue
		}
		var verdicts map[string]json.RawMessage
		if err := json.Unmarshal(cats, &verdicts); err != nil {
			return nil, fmt.Errorf("categories of %q: %v: %w", c.CommentID, err, ErrMalformedResponse)
		}
		for name, v := range verdicts {
			c.Verdicts[name] = verdict(v)
		}
		out = append(out, c)
	}
	return out, nil
}

// verdict reads either `{teste: bool}` or a bare bool.
func verdict(raw json.RawMessage) bool {
	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return b
	}
	var obj struct {
		Teste *bool `json:"teste"`
		Test  *bool `json:"test"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		if obj.Teste != nil {
			return *obj.Teste
		}
		if obj.Test != nil {
			return *obj.Test
		}
	}
	return false
}

func scalarString(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return strings.Trim(string(raw), `"`)
}

// ExtractInsights parses an insights answer. Entries without text are dropped.
func ExtractInsights(body []byte) ([]Insight, error) {
	obj, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	raw, ok := field(obj, "insights")
	if !ok {
		return nil, fmt.Errorf("no insights: %w", ErrMalformedResponse)
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("insights: %v: %w", err, ErrMalformedResponse)
	}

	out := make([]Insight, 0, len(items))
	for _, item := range items {
		in := Insight{
			Type:  textOf(item, "tipo", "type"),
			Title: textOf(item, "titulo", "title"),
			Body:  textOf(item, "texto", "body", "text"),
		}
		if strings.TrimSpace(in.Body) == "" && strings.TrimSpace(in.Title) == "" {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}

func textOf(obj map[string]json.RawMessage, keys ...string) string {
	raw, ok := field(obj, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
