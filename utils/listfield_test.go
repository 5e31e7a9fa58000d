package utils

import (
	"reflect"
	"testing"
)

func TestParseListField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		enc  ListEncoding
		want []string
	}{
		{
			name: "literal JSON list",
			raw:  `["Zucchini", "Pesto", "Olive oil"]`,
			enc:  ListLiteral,
			want: []string{"Zucchini", "Pesto", "Olive oil"},
		},
		{
			name: "literal single-quoted list",
			raw:  `['Greek yogurt', 'Almonds']`,
			enc:  ListLiteral,
			want: []string{"Greek yogurt", "Almonds"},
		},
		{
			name: "malformed literal falls back to one element",
			raw:  `[unterminated`,
			enc:  ListLiteral,
			want: []string{"[unterminated"},
		},
		{
			name: "brace list",
			raw:  `{Cauliflower,Bell peppers,Onions}`,
			enc:  ListBraces,
			want: []string{"Cauliflower", "Bell peppers", "Onions"},
		},
		{
			name: "brace list with quoted elements",
			raw:  `{'Salmon fillet', "Broccoli"}`,
			enc:  ListBraces,
			want: []string{"Salmon fillet", "Broccoli"},
		},
		{
			name: "braces missing closer falls back to one element",
			raw:  `{a,b`,
			enc:  ListBraces,
			want: []string{"{a,b"},
		},
		{
			name: "newline-joined drops blank lines",
			raw:  "Toast the bread.\n\nMash avocado.\n",
			enc:  ListNewline,
			want: []string{"Toast the bread.", "Mash avocado."},
		},
		{
			name: "comma-joined trims whitespace",
			raw:  "Chicken breast, Lettuce ,Tomatoes",
			enc:  ListComma,
			want: []string{"Chicken breast", "Lettuce", "Tomatoes"},
		},
		{
			name: "empty value yields no elements",
			raw:  "   ",
			enc:  ListComma,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListField(tt.raw, tt.enc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseListField(%q, %q) = %v, want %v", tt.raw, tt.enc, got, tt.want)
			}
		})
	}
}

func TestListFieldRoundTrip(t *testing.T) {
	items := []string{"Greek yogurt", "Strawberries", "Chia seeds"}

	for _, enc := range []ListEncoding{ListLiteral, ListBraces, ListNewline, ListComma} {
		encoded := EncodeListField(items, enc)
		decoded := ParseListField(encoded, enc)
		if !reflect.DeepEqual(decoded, items) {
			t.Errorf("round trip via %q: got %v, want %v", enc, decoded, items)
		}
	}
}
