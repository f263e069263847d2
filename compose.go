package genprop

// Compose returns the composition of two unary functions: the result
// takes g's input type, returns f's result type, and computes f(g(x)).
// It is the building block for derived generators and shrinkers; cases
// with other arities need explicit adapter functions.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C {
		return f(g(x))
	}
}
