package lib

// Eval runs the full pipeline on one expression string: tokenize, parse,
// evaluate. Each call is independent; no state survives between calls.
func Eval(expression string) (float64, error) {
	root, err := Parse(expression)
	if err != nil {
		return 0, err
	}
	return Evaluate(root)
}
