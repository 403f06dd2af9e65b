package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpenseMessage(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantDesc   string
		wantAmount float64
		wantErr    bool
	}{
		{
			name:       "simple entry",
			input:      "кофе 200",
			wantDesc:   "кофе",
			wantAmount: 200,
		},
		{
			name:       "multi-word description",
			input:      "корм для кота 850",
			wantDesc:   "корм для кота",
			wantAmount: 850,
		},
		{
			name:       "comma decimal separator",
			input:      "магнит 449,90",
			wantDesc:   "магнит",
			wantAmount: 449.90,
		},
		{
			name:       "surrounding whitespace",
			input:      "  такси   350  ",
			wantDesc:   "такси",
			wantAmount: 350,
		},
		{
			name:    "missing amount",
			input:   "кофе",
			wantErr: true,
		},
		{
			name:    "non-numeric amount",
			input:   "кофе двести",
			wantErr: true,
		},
		{
			name:    "zero amount",
			input:   "кофе 0",
			wantErr: true,
		},
		{
			name:    "negative amount",
			input:   "кофе -50",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, amount, err := ParseExpenseMessage(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, desc)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
		})
	}
}
