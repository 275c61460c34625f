package domain

import "fmt"

// Digits are the digit characters of bases up to 36, lowest first.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Validate checks parameter ranges so bad configuration fails at
// generation time rather than during evaluation.
func Validate(p Property) error {
	switch v := p.(type) {
	case HasBase:
		if v.Base < 2 || v.Base > 36 {
			return invalid(p, "base %d outside [2,36]", v.Base)
		}
		if v.Count > 3 {
			return invalid(p, "count %d outside [0,3]", v.Count)
		}
		if !validDigit(v.Char, v.Base) {
			return invalid(p, "%q is not a digit in base %d", v.Char, v.Base)
		}
	case SumDigits:
		if v.Sum < 4 || v.Sum > 24 {
			return invalid(p, "sum %d outside [4,24]", v.Sum)
		}
		return validCmp(p, v.Cmp)
	case NumDigits:
		if v.Amount > 3 {
			return invalid(p, "amount %d outside [0,3]", v.Amount)
		}
		return validCmp(p, v.Cmp)
	case HasFactor:
		if v.Factor == 0 {
			return invalid(p, "zero factor")
		}
	case NumFactor:
		if v.Num == 0 || v.Num > maxDivisorThreshold {
			return invalid(p, "divisor threshold %d outside [1,%d]", v.Num, maxDivisorThreshold)
		}
		return validCmp(p, v.Cmp)
	case MaxGCDWith:
		if v.With == 0 {
			return invalid(p, "zero reference value")
		}
		if v.Border == 0 || v.Border > maxGCDBorder {
			return invalid(p, "border %d outside [1,%d]", v.Border, maxGCDBorder)
		}
		return validCmp(p, v.Cmp)
	case Prime:
	case Sequence:
		if v.Seq < Triangular || v.Seq > SquareNums {
			return invalid(p, "unknown sequence %d", v.Seq)
		}
	case nil:
		return fmt.Errorf("%w: nil", ErrInvalidProperty)
	default:
		return invalid(p, "unknown variant")
	}
	return nil
}

const (
	maxDivisorThreshold = 16
	maxGCDBorder        = 16
)

func validCmp(p Property, c Comparison) error {
	if c < Greater || c > Less {
		return invalid(p, "unknown comparison %d", c)
	}
	return nil
}

func invalid(p Property, format string, args ...any) error {
	return fmt.Errorf("%w: %T: %s", ErrInvalidProperty, p, fmt.Sprintf(format, args...))
}

// validDigit reports whether ch is a digit of base.
func validDigit(ch byte, base uint8) bool {
	for i := 0; i < int(base) && i < len(Digits); i++ {
		if Digits[i] == ch {
			return true
		}
	}
	return false
}
