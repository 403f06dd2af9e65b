package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases input",
			input: "Кофе Латте",
			want:  "кофе латте",
		},
		{
			name:  "replaces pipe delimiter with space",
			input: "кофе|200",
			want:  "кофе 200",
		},
		{
			name:  "drops stop words",
			input: "купил корм для кота",
			want:  "корм для кота",
		},
		{
			name:  "drops transaction noise",
			input: "оплата за чек покупка продукты",
			want:  "продукты",
		},
		{
			name:  "collapses whitespace",
			input: "  такси   домой  ",
			want:  "такси домой",
		},
		{
			name:  "empty input yields empty output",
			input: "",
			want:  "",
		},
		{
			name:  "only stop words yields empty output",
			input: "купил за в на",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Купил кофе|200",
		"оплатил ЖКХ за январь",
		"",
		"зжжж",
		"мышь для компа",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}
