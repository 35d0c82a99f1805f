// Package trivialmath holds deliberately small arithmetic helpers used to
// exercise the test and coverage tooling end to end.
package trivialmath

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b, truncated toward zero.
// Division by zero returns 0 instead of panicking.
func Divide(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}
