package bigint

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rnd = rand.New(rand.NewSource(1))

func TestZeroValue(t *testing.T) {
	var x Int
	assert.True(t, x.IsZero())
	assert.False(t, x.IsNegative())
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, []int{0}, x.Slots())
	assert.Equal(t, "0", x.String())
	assert.True(t, x.Equal(New()))
	assert.True(t, x.Equal(NewFromInt64(0)))
	assert.True(t, x.Equal(MustParse("0")))
	assert.True(t, x.Equal(MustFromSlots([]int{0})))
}

func TestNewFromSlots(t *testing.T) {
	for _, td := range []struct {
		in   []int
		want string
	}{
		{nil, "0"},
		{[]int{0}, "0"},
		{[]int{7}, "7"},
		{[]int{-7}, "-7"},
		{[]int{-1, 0, 0, 0, 4}, "-10004"},
		{[]int{1, 2, 3, 4, 5}, "12345"},
		{[]int{9, 9, 9, 9}, "9999"},
	} {
		x, err := NewFromSlots(td.in)
		require.NoError(t, err, "%v", td.in)
		x.validate()
		assert.Equal(t, td.want, x.String(), "%v", td.in)
	}

	// the input is copied
	s := []int{1, 2, 3}
	x := MustFromSlots(s)
	s[0] = 9
	assert.Equal(t, "123", x.String())
}

func TestNewFromSlotsErrors(t *testing.T) {
	for _, td := range []struct {
		in   []int
		kind ErrorKind
		pos  int
		msg  string
	}{
		{[]int{2, -3, 4}, NegativeNonLeading, 1, `bigint: negative slot other than the first at offset 1 in "[2 -3 4]"`},
		{[]int{2, 33, 4}, MultiDigit, 1, `bigint: slot is not a single digit at offset 1 in "[2 33 4]"`},
		{[]int{0, 2, 3, 4}, LeadingZero, 0, `bigint: leading zero at offset 0 in "[0 2 3 4]"`},
		{[]int{0, 0}, LeadingZero, 0, ""},
		{[]int{10}, MultiDigit, 0, ""},
		{[]int{-10, 1}, MultiDigit, 0, ""},
		{[]int{1, 2, -1}, NegativeNonLeading, 2, ""},
		{[]int{1, 2, 10}, MultiDigit, 2, ""},
	} {
		x, err := NewFromSlots(td.in)
		require.Error(t, err, "%v", td.in)
		assert.True(t, x.IsZero())

		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, td.kind, kind, "%v", td.in)

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, td.pos, e.Pos, "%v", td.in)
		if td.msg != "" {
			assert.EqualError(t, err, td.msg)
		}
	}
}

func TestParse(t *testing.T) {
	for _, td := range []struct {
		in    string
		slots []int
	}{
		{"0", []int{0}},
		{"-0", []int{0}},
		{"5", []int{5}},
		{"-5", []int{-5}},
		{"12345", []int{1, 2, 3, 4, 5}},
		{"-10004", []int{-1, 0, 0, 0, 4}},
		{"-9223372036854775807000", []int{-9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7, 0, 0, 0}},
	} {
		x, err := Parse(td.in)
		require.NoError(t, err, td.in)
		x.validate()
		assert.Equal(t, td.slots, x.Slots(), td.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, td := range []struct {
		in   string
		kind ErrorKind
		pos  int
	}{
		{"", NotNumerical, 0},
		{"-", NotNumerical, 1},
		{"+1", NotNumerical, 0},
		{"1234d3", NotNumerical, 4},
		{" 1", NotNumerical, 0},
		{"1 ", NotNumerical, 1},
		{"--1", NotNumerical, 1},
		{"1-", NotNumerical, 1},
		{"013423", LeadingZero, 0},
		{"00", LeadingZero, 0},
		{"-00", LeadingZero, 1},
		{"-012", LeadingZero, 1},
	} {
		_, err := Parse(td.in)
		require.Error(t, err, "%q", td.in)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, td.kind, kind, "%q", td.in)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, td.pos, e.Pos, "%q", td.in)
		assert.Equal(t, td.in, e.Input)
	}

	_, err := Parse("1234d3")
	assert.True(t, errors.Is(err, ErrNotNumerical))
	assert.False(t, errors.Is(err, ErrLeadingZero))
	assert.EqualError(t, err, `bigint: input is not numerical at offset 4 in "1234d3"`)
	_, err = Parse("013423")
	assert.True(t, errors.Is(err, ErrLeadingZero))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "leading zero", LeadingZero.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
	assert.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
	assert.EqualError(t, ErrMultiDigit, "bigint: slot is not a single digit")

	_, ok := KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestNewFromInt64(t *testing.T) {
	for _, x := range []int64{
		0, 1, -1, 9, 10, -10, 123400, -54321,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	} {
		z := NewFromInt64(x)
		z.validate()
		assert.Equal(t, big.NewInt(x).String(), z.String())
		v, ok := z.Int64()
		assert.True(t, ok)
		assert.Equal(t, x, v)
	}
}

func TestInt64Overflow(t *testing.T) {
	for _, s := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"18446744073709551616",
		"-9223372036854775807000",
	} {
		_, ok := MustParse(s).Int64()
		assert.False(t, ok, s)
	}
}

func TestAccessors(t *testing.T) {
	x := MustParse("-12")
	assert.True(t, x.IsNegative())
	assert.Equal(t, -1, x.Sign())
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, []int{-1, 2}, x.Slots())
	assert.Equal(t, []int{1, 2}, x.Magnitude())

	y := MustParse("345")
	assert.False(t, y.IsNegative())
	assert.Equal(t, 1, y.Sign())

	// Slots returns a copy
	s := y.Slots()
	s[0] = 9
	assert.Equal(t, "345", y.String())
}

func TestMust(t *testing.T) {
	assert.PanicsWithValue(t,
		`MustParse("x") failed: bigint: input is not numerical at offset 0 in "x"`,
		func() { MustParse("x") })
	assert.Panics(t, func() { MustFromSlots([]int{1, -1}) })
	assert.NotPanics(t, func() { MustFromSlots([]int{-1, 1}) })
}

// rndInt returns a random Int of up to n digits.
func rndInt(n int) Int {
	m := rndDec(1 + rnd.Intn(n))
	if rnd.Intn(8) == 0 {
		m = dec{0}
	}
	return fromDec(m, rnd.Intn(2) == 0)
}

func toBig(x Int) *big.Int {
	z, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic(x.String())
	}
	return z
}
