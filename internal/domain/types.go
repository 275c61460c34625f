package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxGuess is the top of the guessing domain 0..MaxGuess.
	MaxGuess = 255
	// MaxProblemLen is bounded by the width of Hint.
	MaxProblemLen = 8
)

var (
	ErrProblemTooLong  = errors.New("problem exceeds hint width")
	ErrInvalidProperty = errors.New("invalid property")
)

// Property is one boolean predicate over a guess. The set of implementations
// is closed: only the variant types below satisfy it.
type Property interface {
	Kind() Kind
	sealed()
}

// HasBase holds when Char appears exactly Count times in the guess written in Base.
type HasBase struct {
	Char  byte  `json:"char" yaml:"char"`
	Count uint8 `json:"count" yaml:"count"`
	Base  uint8 `json:"base" yaml:"base"`
}

// MarshalYAML renders Char as a character rather than its byte value.
func (h HasBase) MarshalYAML() (any, error) {
	return struct {
		Char  string `yaml:"char"`
		Count uint8  `yaml:"count"`
		Base  uint8  `yaml:"base"`
	}{string(h.Char), h.Count, h.Base}, nil
}

// SumDigits compares the decimal digit sum against Sum.
type SumDigits struct {
	Sum uint8      `json:"sum" yaml:"sum"`
	Cmp Comparison `json:"cmp" yaml:"cmp"`
}

// NumDigits compares the decimal digit count against Amount.
type NumDigits struct {
	Amount uint8      `json:"amount" yaml:"amount"`
	Cmp    Comparison `json:"cmp" yaml:"cmp"`
}

// HasFactor holds when divisibility by Factor matches Contains.
type HasFactor struct {
	Factor   uint8 `json:"factor" yaml:"factor"`
	Contains bool  `json:"contains" yaml:"contains"`
}

// NumFactor compares the number of positive divisors against Num.
type NumFactor struct {
	Num uint8      `json:"num" yaml:"num"`
	Cmp Comparison `json:"cmp" yaml:"cmp"`
}

// MaxGCDWith compares gcd(guess, With) against Border.
type MaxGCDWith struct {
	With   uint8      `json:"with" yaml:"with"`
	Border uint8      `json:"border" yaml:"border"`
	Cmp    Comparison `json:"cmp" yaml:"cmp"`
}

// Prime holds when primality of the guess matches IsPrime.
type Prime struct {
	IsPrime bool `json:"isPrime" yaml:"is_prime"`
}

// Sequence holds when membership in Seq matches Included.
type Sequence struct {
	Seq      SequenceKind `json:"seq" yaml:"seq"`
	Included bool         `json:"included" yaml:"included"`
}

func (HasBase) Kind() Kind    { return KindHasBase }
func (SumDigits) Kind() Kind  { return KindSumDigits }
func (NumDigits) Kind() Kind  { return KindNumDigits }
func (HasFactor) Kind() Kind  { return KindHasFactor }
func (NumFactor) Kind() Kind  { return KindNumFactor }
func (MaxGCDWith) Kind() Kind { return KindMaxGCDWith }
func (Prime) Kind() Kind      { return KindPrime }
func (Sequence) Kind() Kind   { return KindSequence }

func (HasBase) sealed()    {}
func (SumDigits) sealed()  {}
func (NumDigits) sealed()  {}
func (HasFactor) sealed()  {}
func (NumFactor) sealed()  {}
func (MaxGCDWith) sealed() {}
func (Prime) sealed()      {}
func (Sequence) sealed()   {}

// Problem is an ordered, read-only list of properties. Index i owns bit i of a Hint.
type Problem struct {
	props []Property
}

// NewProblem validates every property and freezes them in the given order.
func NewProblem(props ...Property) (*Problem, error) {
	if len(props) > MaxProblemLen {
		return nil, fmt.Errorf("%w: %d properties, max %d", ErrProblemTooLong, len(props), MaxProblemLen)
	}
	for i, p := range props {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
	}
	cp := make([]Property, len(props))
	copy(cp, props)
	return &Problem{props: cp}, nil
}

func (p *Problem) Len() int { return len(p.props) }

func (p *Problem) At(i int) Property { return p.props[i] }

// Properties returns a copy in bit order.
func (p *Problem) Properties() []Property {
	out := make([]Property, len(p.props))
	copy(out, p.props)
	return out
}

// FullMask is the hint with every meaningful bit set.
func (p *Problem) FullMask() Hint {
	return Hint(uint16(1)<<len(p.props) - 1)
}

// Hint packs one bit per property, property 0 in the least significant bit.
type Hint uint8

// Bit reports whether property i was satisfied.
func (h Hint) Bit(i int) bool { return h&(1<<i) != 0 }

// Format renders the low n bits, most significant first.
func (h Hint) Format(n int) string {
	var b strings.Builder
	for i := n - 1; i >= 0; i-- {
		if h.Bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Puzzle is one generated game: the problem plus the secret it hides.
type Puzzle struct {
	Seed    int64
	Mode    WinMode
	Problem *Problem
	Secret  uint8
	// Solutions lists every in-domain value satisfying all properties.
	Solutions []uint8
}
