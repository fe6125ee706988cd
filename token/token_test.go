package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/token"
	"github.com/katalvlaran/lvltree/tree"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tree.Slot
	}{
		{"single", "5", []tree.Slot{tree.Val(5)}},
		{"with gaps", "1,2,3,null,4", []tree.Slot{tree.Val(1), tree.Val(2), tree.Val(3), tree.Absent(), tree.Val(4)}},
		{"spaces and case", " 1 , NULL ,  -2.5 ", []tree.Slot{tree.Val(1), tree.Absent(), tree.Val(-2.5)}},
		{"exponent", "1e3, Null", []tree.Slot{tree.Val(1000), tree.Absent()}},
		{"trailing null", "7,null,null", []tree.Slot{tree.Val(7), tree.Absent(), tree.Absent()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := token.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_RootErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "NULL,1", "abc,1", ",1", "NaN", "Inf,1"} {
		_, err := token.Parse(in)
		assert.ErrorIs(t, err, token.ErrRootNotNumber, in)
		assert.ErrorIs(t, err, tree.ErrInvalidInput, in)
	}
}

func TestParse_BadToken(t *testing.T) {
	tests := []struct {
		in      string
		message string
	}{
		{"1,2,x", `token #3 ("x")`},
		{"1,,2", `token #2 ("")`},
		{"1, nul", `token #2 ("nul")`},
		{"1,+Inf", `token #2 ("+Inf")`},
		{"1,nan", `token #2 ("nan")`},
	}
	for _, tc := range tests {
		_, err := token.Parse(tc.in)
		require.ErrorIs(t, err, token.ErrBadToken, tc.in)
		assert.ErrorIs(t, err, tree.ErrInvalidInput, tc.in)
		assert.Contains(t, err.Error(), tc.message)
	}
}

func TestFormat(t *testing.T) {
	seq := []tree.Slot{tree.Val(1), tree.Absent(), tree.Val(2.5), tree.Val(-3)}
	text := token.Format(seq)
	assert.Equal(t, "1, null, 2.5, -3", text)

	back, err := token.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, seq, back)
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "", token.FormatValues(nil))
	assert.Equal(t, "1, 2, 4, 3", token.FormatValues([]float64{1, 2, 4, 3}))
}
