package domain

// Comparison is the relation a measured value must have to a threshold.
type Comparison int

const (
	Greater Comparison = iota
	Equal
	Less
)

// Holds reports whether value cmp threshold.
func (c Comparison) Holds(value, threshold int) bool {
	switch c {
	case Greater:
		return value > threshold
	case Equal:
		return value == threshold
	case Less:
		return value < threshold
	}
	return false
}

func (c Comparison) String() string {
	switch c {
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	case Less:
		return "less"
	}
	return "unknown"
}

// Family groups property kinds for round-robin problem generation.
type Family int

const (
	Representation Family = iota
	Factors
	Sequences
)

// FamilyFor maps any slot number onto a family (n mod 3).
func FamilyFor(n int) Family {
	f := n % 3
	if f < 0 {
		f += 3
	}
	return Family(f)
}

func (f Family) String() string {
	switch f {
	case Representation:
		return "representation"
	case Factors:
		return "factors"
	case Sequences:
		return "sequence"
	}
	return "unknown"
}

// Kind tags the closed set of property variants.
type Kind int

const (
	KindHasBase Kind = iota
	KindSumDigits
	KindNumDigits
	KindHasFactor
	KindNumFactor
	KindMaxGCDWith
	KindPrime
	KindSequence
)

// Family returns the family a kind is generated under.
func (k Kind) Family() Family {
	switch k {
	case KindHasBase, KindSumDigits, KindNumDigits:
		return Representation
	case KindHasFactor, KindNumFactor, KindMaxGCDWith, KindPrime:
		return Factors
	default:
		return Sequences
	}
}

func (k Kind) String() string {
	switch k {
	case KindHasBase:
		return "has_base"
	case KindSumDigits:
		return "sum_digits"
	case KindNumDigits:
		return "num_digits"
	case KindHasFactor:
		return "has_factor"
	case KindNumFactor:
		return "num_factor"
	case KindMaxGCDWith:
		return "max_gcd_with"
	case KindPrime:
		return "prime"
	case KindSequence:
		return "sequence"
	}
	return "unknown"
}

// SequenceKind names an integer sequence with a membership oracle.
type SequenceKind int

const (
	Triangular SequenceKind = iota
	Fibonacci
	TwoPowers
	SquareNums
)

func (s SequenceKind) String() string {
	switch s {
	case Triangular:
		return "triangular"
	case Fibonacci:
		return "fibonacci"
	case TwoPowers:
		return "powers of two"
	case SquareNums:
		return "square numbers"
	}
	return "unknown"
}

// WinMode selects what ends a game session.
type WinMode int

const (
	WinNumber WinMode = iota // guess equals the secret
	WinHint                  // hint has every bit set
)

func (m WinMode) String() string {
	if m == WinHint {
		return "hint"
	}
	return "number"
}

func (c Comparison) MarshalText() ([]byte, error)   { return []byte(c.String()), nil }
func (s SequenceKind) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
