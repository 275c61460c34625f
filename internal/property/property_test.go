package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/sequence"
)

func TestFulfilledScenarios(t *testing.T) {
	cases := []struct {
		name string
		p    domain.Property
		by   uint8
		want bool
	}{
		{"sum equal hit", domain.SumDigits{Sum: 10, Cmp: domain.Equal}, 37, true},
		{"sum equal miss", domain.SumDigits{Sum: 10, Cmp: domain.Equal}, 40, false},
		{"sum greater", domain.SumDigits{Sum: 10, Cmp: domain.Greater}, 199, true},
		{"sum less", domain.SumDigits{Sum: 4, Cmp: domain.Less}, 12, true},
		{"digits equal hit", domain.NumDigits{Amount: 2, Cmp: domain.Equal}, 45, true},
		{"digits equal miss", domain.NumDigits{Amount: 2, Cmp: domain.Equal}, 5, false},
		{"digits of zero", domain.NumDigits{Amount: 1, Cmp: domain.Equal}, 0, true},
		{"fibonacci hit", domain.Sequence{Seq: domain.Fibonacci, Included: true}, 13, true},
		{"fibonacci miss", domain.Sequence{Seq: domain.Fibonacci, Included: true}, 4, false},
		{"fibonacci excluded", domain.Sequence{Seq: domain.Fibonacci, Included: false}, 4, true},
		{"factor hit", domain.HasFactor{Factor: 4, Contains: true}, 8, true},
		{"factor miss", domain.HasFactor{Factor: 4, Contains: true}, 10, false},
		{"factor excluded", domain.HasFactor{Factor: 4, Contains: false}, 10, true},
		{"zero divisible", domain.HasFactor{Factor: 7, Contains: true}, 0, true},
		{"hex digit", domain.HasBase{Char: 'f', Count: 2, Base: 16}, 255, true},
		{"hex digit count mismatch", domain.HasBase{Char: 'f', Count: 1, Base: 16}, 255, false},
		{"binary zeros", domain.HasBase{Char: '0', Count: 3, Base: 2}, 17, true},
		{"zero renders as single digit", domain.HasBase{Char: '0', Count: 1, Base: 2}, 0, true},
		{"absent char", domain.HasBase{Char: '7', Count: 0, Base: 10}, 123, true},
		{"divisors of 12", domain.NumFactor{Num: 6, Cmp: domain.Equal}, 12, true},
		{"divisors of prime", domain.NumFactor{Num: 2, Cmp: domain.Greater}, 13, false},
		{"divisors of zero", domain.NumFactor{Num: 1, Cmp: domain.Less}, 0, true},
		{"gcd greater", domain.MaxGCDWith{With: 36, Border: 3, Cmp: domain.Greater}, 24, true},
		{"gcd less", domain.MaxGCDWith{With: 36, Border: 3, Cmp: domain.Less}, 25, true},
		{"gcd with zero", domain.MaxGCDWith{With: 36, Border: 36, Cmp: domain.Equal}, 0, true},
		{"prime", domain.Prime{IsPrime: true}, 251, true},
		{"one is not prime", domain.Prime{IsPrime: true}, 1, false},
		{"zero not prime", domain.Prime{IsPrime: false}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Fulfilled(tc.p, tc.by))
		})
	}
}

func TestSequenceFulfilledMatchesMembership(t *testing.T) {
	kinds := []domain.SequenceKind{domain.Triangular, domain.Fibonacci, domain.TwoPowers, domain.SquareNums}
	for _, kind := range kinds {
		for _, included := range []bool{true, false} {
			p := domain.Sequence{Seq: kind, Included: included}
			for by := 0; by <= domain.MaxGuess; by++ {
				want := included == sequence.Contains(kind, uint8(by))
				require.Equal(t, want, Fulfilled(p, uint8(by)), "%v included=%v by=%d", kind, included, by)
			}
		}
	}
}

func TestFulfilledTotalOverDomain(t *testing.T) {
	all := []domain.Property{
		domain.HasBase{Char: 'z', Count: 0, Base: 36},
		domain.SumDigits{Sum: 24, Cmp: domain.Less},
		domain.NumDigits{Amount: 0, Cmp: domain.Greater},
		domain.HasFactor{Factor: 255, Contains: true},
		domain.NumFactor{Num: 16, Cmp: domain.Greater},
		domain.MaxGCDWith{With: 255, Border: 16, Cmp: domain.Less},
		domain.Prime{IsPrime: true},
		domain.Sequence{Seq: domain.SquareNums, Included: true},
	}
	for _, p := range all {
		require.NoError(t, domain.Validate(p))
		assert.NotPanics(t, func() {
			for by := 0; by <= domain.MaxGuess; by++ {
				Fulfilled(p, uint8(by))
			}
		}, "%T", p)
	}
}

func TestDegenerate(t *testing.T) {
	assert.True(t, Degenerate(domain.SumDigits{Sum: 24, Cmp: domain.Less}), "no digit sum reaches 24")
	assert.True(t, Degenerate(domain.NumDigits{Amount: 0, Cmp: domain.Greater}))
	assert.True(t, Degenerate(domain.HasFactor{Factor: 1, Contains: true}))
	assert.True(t, Degenerate(domain.HasBase{Char: '1', Count: 3, Base: 36}))
	assert.False(t, Degenerate(domain.SumDigits{Sum: 10, Cmp: domain.Equal}))
	assert.False(t, Degenerate(domain.Prime{IsPrime: false}))
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		p    domain.Property
		want string
	}{
		{domain.SumDigits{Sum: 10, Cmp: domain.Greater}, "Digits sum to more than 10"},
		{domain.SumDigits{Sum: 10, Cmp: domain.Equal}, "Digits sum to exactly 10"},
		{domain.NumDigits{Amount: 3, Cmp: domain.Less}, "Input has fewer than 3 digits"},
		{domain.Sequence{Seq: domain.Fibonacci, Included: true}, "Input is in the fibonacci sequence"},
		{domain.Sequence{Seq: domain.SquareNums, Included: false}, "Input is not in the square numbers sequence"},
		{domain.HasBase{Char: 'a', Count: 2, Base: 16}, "Input contains character 'a' 2 times in base 16"},
		{domain.HasFactor{Factor: 4, Contains: false}, "Input is not divisible by 4"},
		{domain.NumFactor{Num: 4, Cmp: domain.Greater}, "Input has more than 4 divisors"},
		{domain.MaxGCDWith{With: 36, Border: 3, Cmp: domain.Less}, "GCD of input and 36 is less than 3"},
		{domain.Prime{IsPrime: true}, "Input is prime"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Describe(tc.p))
	}
}
