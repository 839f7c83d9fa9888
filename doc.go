// Package bigcalc implements an arbitrary-precision integer calculator.
//
// Each statement is one line of text: either an assignment, like "a = 5",
// or an arithmetic expression over + - * /, parentheses, and previously
// assigned variables. Expressions are converted to postfix form with the
// shunting-yard algorithm and reduced over a value stack, so results are
// exact at any magnitude.
//
// Variables live in a Context. A Context is not safe to use concurrently.
package bigcalc
