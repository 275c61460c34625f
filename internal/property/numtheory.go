package property

import "strconv"

func digitSum(by uint8) int {
	n, s := int(by), 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}

func digitCount(by uint8) int {
	return len(strconv.Itoa(int(by)))
}

// divisorCount counts positive divisors. Zero has no finite count and
// yields 0.
func divisorCount(by uint8) int {
	n := int(by)
	c := 0
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			c++
		}
	}
	return c
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isPrime(by uint8) bool {
	n := int(by)
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// countInBase renders by in base (lower-case digits, no leading zero) and
// counts occurrences of ch.
func countInBase(by uint8, base uint8, ch byte) int {
	s := strconv.FormatUint(uint64(by), int(base))
	c := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			c++
		}
	}
	return c
}
