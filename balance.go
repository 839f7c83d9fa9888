package bigcalc

// balanced reports whether every parenthesis in expr matches. It scans the
// raw expression, so it runs before any tokenization.
func balanced(expr string) bool {
	var stack []byte
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			stack = append(stack, '(')
		case ')':
			if len(stack) == 0 || stack[len(stack)-1] != '(' {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
