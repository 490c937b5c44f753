package kropki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellIndexGeometry(t *testing.T) {
	type tc struct {
		Name string
		Cell CellIndex
		Row  int
		Col  int
		Box  int
	}

	for _, tt := range []tc{
		{Name: "origin", Cell: 0, Row: 0, Col: 0, Box: 0},
		{Name: "end of first row", Cell: 8, Row: 0, Col: 8, Box: 2},
		{Name: "center", Cell: 40, Row: 4, Col: 4, Box: 4},
		{Name: "last cell", Cell: 80, Row: 8, Col: 8, Box: 8},
		{Name: "second row", Cell: 9, Row: 1, Col: 0, Box: 0},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Row, tt.Cell.Row())
			assert.Equal(t, tt.Col, tt.Cell.Col())
			assert.Equal(t, tt.Box, tt.Cell.Box())
			assert.Equal(t, tt.Cell, Index(tt.Row, tt.Col))
		})
	}
}

func TestCellIndexValid(t *testing.T) {
	assert.True(t, CellIndex(0).Valid())
	assert.True(t, CellIndex(80).Valid())
	assert.False(t, CellIndex(-1).Valid())
	assert.False(t, CellIndex(81).Valid())
}

func TestDomainBits(t *testing.T) {
	assert.Equal(t, Domain(0b1_0000), SingletonOf(4))
	assert.Equal(t, 9, DigitsMask.Count())

	m := DomainOf(2, 5, 9)
	assert.Equal(t, 3, m.Count())
	assert.True(t, m.Has(5))
	assert.False(t, m.Has(3))
	assert.Equal(t, 2, m.Min())
	assert.Equal(t, 9, m.Max())
	assert.False(t, m.IsSingleton())

	d, ok := SingletonOf(7).Digit()
	assert.True(t, ok)
	assert.Equal(t, 7, d)

	_, ok = m.Digit()
	assert.False(t, ok)
}

func TestDomainString(t *testing.T) {
	assert.Equal(t, "111111111", DigitsMask.String())
	assert.Equal(t, "000000001", SingletonOf(1).String())
	assert.Equal(t, "100000000", SingletonOf(9).String())
	assert.Equal(t, "000001000", SingletonOf(4).String())
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, `invalid character 'x' at position 12`, DecodeError{Position: 12, Char: 'x'}.Error())
	assert.Equal(t, "need 81 puzzle characters, got 80", LengthError{Got: 80}.Error())
}
