package property

import (
	"fmt"

	"svw.info/numguess/internal/domain"
)

// Describe renders p as a sentence about the input.
func Describe(p domain.Property) string {
	switch v := p.(type) {
	case domain.HasBase:
		return fmt.Sprintf("Input contains character '%c' %d times in base %d", v.Char, v.Count, v.Base)
	case domain.SumDigits:
		return fmt.Sprintf("Digits sum to %s %d", relation(v.Cmp, "more than", "exactly", "less than"), v.Sum)
	case domain.NumDigits:
		return fmt.Sprintf("Input has %s %d digits", relation(v.Cmp, "more than", "exactly", "fewer than"), v.Amount)
	case domain.HasFactor:
		return fmt.Sprintf("Input is %sdivisible by %d", not(v.Contains), v.Factor)
	case domain.NumFactor:
		return fmt.Sprintf("Input has %s %d divisors", relation(v.Cmp, "more than", "exactly", "fewer than"), v.Num)
	case domain.MaxGCDWith:
		return fmt.Sprintf("GCD of input and %d is %s %d", v.With, relation(v.Cmp, "greater than", "exactly", "less than"), v.Border)
	case domain.Prime:
		return fmt.Sprintf("Input is %sprime", not(v.IsPrime))
	case domain.Sequence:
		return fmt.Sprintf("Input is %sin the %s sequence", not(v.Included), v.Seq)
	}
	return fmt.Sprintf("unknown property %T", p)
}

func relation(c domain.Comparison, gt, eq, lt string) string {
	switch c {
	case domain.Greater:
		return gt
	case domain.Equal:
		return eq
	default:
		return lt
	}
}

func not(holds bool) string {
	if holds {
		return ""
	}
	return "not "
}

// Summary is a structured view of a property for machine-readable output.
type Summary struct {
	Index       int             `yaml:"bit"`
	Kind        string          `yaml:"kind"`
	Family      string          `yaml:"family"`
	Description string          `yaml:"description"`
	Params      domain.Property `yaml:"params"`
}

// Summarize lists the problem's properties in bit order.
func Summarize(pr *domain.Problem) []Summary {
	out := make([]Summary, 0, pr.Len())
	for i := 0; i < pr.Len(); i++ {
		p := pr.At(i)
		out = append(out, Summary{
			Index:       i,
			Kind:        p.Kind().String(),
			Family:      p.Kind().Family().String(),
			Description: Describe(p),
			Params:      p,
		})
	}
	return out
}
