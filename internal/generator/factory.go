package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/property"
)

// maxRedraws bounds rejection sampling for a single property slot.
const maxRedraws = 1000

var errNoProperty = errors.New("could not draw a non-degenerate property")

// Factory draws randomized properties from an injected source.
type Factory struct {
	rng *rand.Rand
	// Redraws counts draws rejected as invalid or degenerate.
	Redraws int
}

func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// Property draws one property from family mod 3. The kind is picked once,
// uniformly within the family; parameter draws that are a tautology or
// contradiction over the guessing domain are discarded and redrawn for that
// same kind.
func (f *Factory) Property(family int) (domain.Property, error) {
	kind := f.pickKind(domain.FamilyFor(family))
	for i := 0; i < maxRedraws; i++ {
		p := f.drawKind(kind)
		if domain.Validate(p) == nil && !property.Degenerate(p) {
			return p, nil
		}
		f.Redraws++
	}
	return nil, fmt.Errorf("%w: kind %s", errNoProperty, kind)
}

// Problem fills length slots round-robin over the three families.
func (f *Factory) Problem(length int) (*domain.Problem, error) {
	if length > domain.MaxProblemLen {
		return nil, fmt.Errorf("%w: length %d, max %d", domain.ErrProblemTooLong, length, domain.MaxProblemLen)
	}
	if length < 0 {
		return nil, fmt.Errorf("negative problem length %d", length)
	}
	props := make([]domain.Property, 0, length)
	for i := 0; i < length; i++ {
		p, err := f.Property(i)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return domain.NewProblem(props...)
}

var familyKinds = map[domain.Family][]domain.Kind{
	domain.Representation: {domain.KindHasBase, domain.KindSumDigits, domain.KindNumDigits},
	domain.Factors:        {domain.KindHasFactor, domain.KindNumFactor, domain.KindMaxGCDWith, domain.KindPrime},
	domain.Sequences:      {domain.KindSequence},
}

func (f *Factory) pickKind(fam domain.Family) domain.Kind {
	kinds := familyKinds[fam]
	return kinds[f.rng.Intn(len(kinds))]
}

// drawKind fills the parameters of one kind.
func (f *Factory) drawKind(kind domain.Kind) domain.Property {
	switch kind {
	case domain.KindHasBase:
		return f.hasBase()
	case domain.KindSumDigits:
		return f.sumDigits()
	case domain.KindNumDigits:
		return f.numDigits()
	case domain.KindHasFactor:
		return f.hasFactor()
	case domain.KindNumFactor:
		return f.numFactor()
	case domain.KindMaxGCDWith:
		return f.maxGCDWith()
	case domain.KindPrime:
		return domain.Prime{IsPrime: f.coin()}
	case domain.KindSequence:
		return domain.Sequence{
			Seq:      domain.SequenceKind(f.rng.Intn(4)),
			Included: f.coin(),
		}
	}
	panic(fmt.Sprintf("generator: unhandled kind %s", kind))
}

func (f *Factory) hasBase() domain.HasBase {
	base := f.between(2, 36)
	return domain.HasBase{
		Char:  domain.Digits[f.rng.Intn(base)],
		Count: uint8(f.between(0, 3)),
		Base:  uint8(base),
	}
}

// sumDigits forces Greater for small sums and Less for large ones.
func (f *Factory) sumDigits() domain.SumDigits {
	sum := f.between(4, 24)
	var cmp domain.Comparison
	switch {
	case sum < 6:
		cmp = domain.Greater
	case sum > 16:
		cmp = domain.Less
	default:
		cmp = []domain.Comparison{domain.Greater, domain.Equal, domain.Less}[f.rng.Intn(3)]
	}
	return domain.SumDigits{Sum: uint8(sum), Cmp: cmp}
}

func (f *Factory) numDigits() domain.NumDigits {
	amount := f.between(0, 3)
	var cmp domain.Comparison
	switch {
	case amount <= 1:
		cmp = domain.Greater
	case amount == 3:
		cmp = domain.Less
	default:
		cmp = []domain.Comparison{domain.Greater, domain.Equal}[f.rng.Intn(2)]
	}
	return domain.NumDigits{Amount: uint8(amount), Cmp: cmp}
}

func (f *Factory) hasFactor() domain.HasFactor {
	return domain.HasFactor{Factor: uint8(f.between(1, 255)), Contains: f.coin()}
}

func (f *Factory) numFactor() domain.NumFactor {
	return domain.NumFactor{Num: uint8(f.between(1, 16)), Cmp: f.comparison()}
}

func (f *Factory) maxGCDWith() domain.MaxGCDWith {
	return domain.MaxGCDWith{
		With:   uint8(f.between(1, 255)),
		Border: uint8(f.between(1, 16)),
		Cmp:    f.comparison(),
	}
}

// between returns a uniform int in [lo, hi].
func (f *Factory) between(lo, hi int) int { return lo + f.rng.Intn(hi-lo+1) }

func (f *Factory) coin() bool { return f.rng.Intn(2) == 1 }

func (f *Factory) comparison() domain.Comparison { return domain.Comparison(f.rng.Intn(3)) }
