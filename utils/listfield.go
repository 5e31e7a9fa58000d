package utils

import (
	"encoding/json"
	"strings"
)

// ListEncoding identifies how a delimited-file field encodes a list of
// strings. The encoding is declared per source, never sniffed.
type ListEncoding string

const (
	ListLiteral ListEncoding = "literal" // ["a","b"] JSON-style literal
	ListBraces  ListEncoding = "braces"  // {a,b,c} postgres array dump
	ListNewline ListEncoding = "newline" // one element per line
	ListComma   ListEncoding = "comma"   // a, b, c
)

// ParseListField decodes raw into an ordered slice of trimmed, non-empty
// strings. A value that cannot be decoded is returned whole as a single
// element: one bad field must not sink the record it belongs to.
func ParseListField(raw string, enc ListEncoding) []string {
	switch enc {
	case ListLiteral:
		return parseLiteralList(raw)
	case ListBraces:
		return parseBraceList(raw)
	case ListNewline:
		return splitAndTrim(raw, "\n")
	case ListComma:
		return splitAndTrim(raw, ",")
	}
	return singleElement(raw)
}

// EncodeListField is the inverse of ParseListField for the given encoding.
func EncodeListField(items []string, enc ListEncoding) string {
	switch enc {
	case ListLiteral:
		b, err := json.Marshal(items)
		if err != nil {
			return "[]"
		}
		return string(b)
	case ListBraces:
		return "{" + strings.Join(items, ",") + "}"
	case ListNewline:
		return strings.Join(items, "\n")
	default:
		return strings.Join(items, ", ")
	}
}

func parseLiteralList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return singleElement(raw)
	}
	var items []string
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		// Python-repr lists arrive single-quoted; retry before giving up.
		requoted := strings.ReplaceAll(trimmed, "'", `"`)
		if err := json.Unmarshal([]byte(requoted), &items); err != nil {
			return singleElement(raw)
		}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseBraceList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return singleElement(raw)
	}
	inner := trimmed[1 : len(trimmed)-1]
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.Trim(p, ` '"`); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitAndTrim(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func singleElement(raw string) []string {
	if s := strings.TrimSpace(raw); s != "" {
		return []string{s}
	}
	return nil
}
