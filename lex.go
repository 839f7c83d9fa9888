package bigcalc

import (
	"regexp"
	"strings"
)

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/"

var (
	// numberPat matches an optionally signed integer literal with an
	// optional fractional part. The evaluator keeps only the integer part
	// of a fractional literal.
	numberPat = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	// identPat matches a variable name: one or more letters, nothing else.
	identPat = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// signPairs collapses one round of redundant unary sign pairs.
var signPairs = strings.NewReplacer("++", "+", "--", "+", "+-", "-", "-+", "-")

// normalizeSigns collapses runs of + and - signs until no pair remains.
// Iterating to a fixed point handles runs of three or more.
func normalizeSigns(expr string) string {
	for {
		r := signPairs.Replace(expr)
		if r == expr {
			return r
		}
		expr = r
	}
}

// Tokenize splits an infix expression into tokens: numbers, identifiers,
// operators, and parentheses. Sign pairs are normalized first, so "1--2"
// tokenizes like "1+2". A sign immediately preceding a digit at the start
// of the expression, or after an operator or open parenthesis, is part of
// the number; after a number, identifier, or close parenthesis it is a
// binary operator. Malformed runs such as "1a" pass through as single
// tokens for the converter and evaluator to reject.
//
// The sequences "**" and "//" are rejected outright.
func Tokenize(expr string) ([]string, error) {
	if strings.Contains(expr, "**") || strings.Contains(expr, "//") {
		return nil, &ExprError{Expr: expr, Reason: "repeated operator"}
	}
	expr = normalizeSigns(expr)
	var toks []string
	var buf strings.Builder
	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			toks = append(toks, s)
		}
		buf.Reset()
	}
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '(' || c == ')':
			flush()
			toks = append(toks, string(c))
		case strings.IndexByte(Operators, c) >= 0:
			flush()
			if (c == '+' || c == '-') && unaryPos(toks) && i+1 < len(expr) && isDigit(expr[i+1]) {
				// Sign of the number that follows.
				buf.WriteByte(c)
				continue
			}
			toks = append(toks, string(c))
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return toks, nil
}

// unaryPos reports whether a sign at the current position would be unary,
// i.e. there is no completed operand to its left.
func unaryPos(toks []string) bool {
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	return last == "(" || (len(last) == 1 && strings.IndexByte(Operators, last[0]) >= 0)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
