package bigcalc

import "strings"

// precedence maps each operator to its binding strength. Two levels only;
// all four operators are left-associative.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// Postfix converts an infix expression to a space-joined postfix sequence
// using the shunting-yard algorithm. Variable references are resolved
// against ctx at conversion time and appear in the output as decimal
// literals. An identifier with no stored value is dropped from the output;
// the resulting operand shortage surfaces when the sequence is evaluated.
func (ctx *Context) Postfix(expr string) (string, error) {
	if !balanced(expr) {
		return "", &ExprError{Expr: expr, Reason: "unbalanced parentheses"}
	}
	toks, err := Tokenize(expr)
	if err != nil {
		return "", err
	}
	var out, ops []string
	for _, tok := range toks {
		switch {
		case numberPat.MatchString(tok):
			out = append(out, tok)
		case tok == "(":
			ops = append(ops, tok)
		case tok == ")":
			// Pop to the matching open parenthesis and discard it. With no
			// open parenthesis on the stack the close parenthesis is
			// ignored; the balance check keeps that case from arising.
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == "(" {
					break
				}
				out = append(out, top)
			}
		case precedence[tok] > 0:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == "(" {
					break
				}
				// The stacked-minus check is subsumed by the >= comparison;
				// it stays so that left-to-right reduction of chained
				// subtraction is visibly enforced.
				if precedence[top] < precedence[tok] && !(top == "-" && tok == "-") {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			if v, ok := ctx.names[tok]; ok {
				out = append(out, v.String())
			}
			// Unknown identifiers fall through and vanish here.
		}
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return strings.Join(out, " "), nil
}
