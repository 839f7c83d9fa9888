package bigcalc_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/zephyrtronium/bigcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"precedence", "1+2*3", "7"},
		{"parens", "(1+2)*3", "9"},
		{"chain-sub", "8-3-2", "3"},
		{"mixed-level", "10-4+2", "8"},
		{"nested", "2*(3+4)", "14"},
		{"plus-plus", "1++2", "3"},
		{"plus-minus", "1+-2", "-1"},
		{"minus-minus", "1--2", "3"},
		{"div-truncates", "7/2", "3"},
		{"div-truncates-neg", "-7/2", "-3"},
		{"div-then-mul", "7/2*2", "6"},
		{"var", "x+1", "43"},
		{"var-product", "x*x", "1764"},
		{"huge-mul", "123456789012345678901234567890*1" + strings.Repeat("0", 30),
			"123456789012345678901234567890" + strings.Repeat("0", 30)},
		{"huge-add", strings.Repeat("9", 32) + "+1", "1" + strings.Repeat("0", 32)},
	}
	ctx := bigcalc.NewContext(bigcalc.SetVar("x", big.NewInt(42)))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := ctx.Eval(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: unexpected error %v", c.src, err)
			}
			if r.String() != c.want {
				t.Errorf("evaluating %q: want %s, got %s", c.src, c.want, r)
			}
			// Evaluating again without intervening assignments gives the
			// same answer.
			q, err := ctx.Eval(c.src)
			if err != nil {
				t.Fatalf("re-evaluating %q: unexpected error %v", c.src, err)
			}
			if r.Cmp(q) != 0 {
				t.Errorf("re-evaluating %q: got %s, then %s", c.src, r, q)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   func(error) bool
	}{
		{"open-paren", "(1+2", asKind[*bigcalc.ExprError]},
		{"close-paren", "1+2)", asKind[*bigcalc.ExprError]},
		{"star-star", "2**3", asKind[*bigcalc.ExprError]},
		{"slash-slash", "2//3", asKind[*bigcalc.ExprError]},
		{"bare-op", "+", asKind[*bigcalc.ExprError]},
		{"missing-operand", "1+", asKind[*bigcalc.ExprError]},
		// A dropped unknown identifier starves an operator of operands.
		{"unknown-in-expr", "q+1", asKind[*bigcalc.ExprError]},
		// Alone it leaves nothing on the stack at all.
		{"unknown-alone", "q", asKind[*bigcalc.NameError]},
		{"adjacent-nums", "3 4", asKind[*bigcalc.NameError]},
		{"div-zero", "1/0", asKind[*bigcalc.DivisionError]},
		{"div-zero-expr", "1/(2-2)", asKind[*bigcalc.DivisionError]},
	}
	ctx := bigcalc.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := ctx.Eval(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %s, not an error", c.src, r)
			}
			if !c.as(err) {
				t.Errorf("evaluating %q: wrong error kind %#v", c.src, err)
			}
			var serr bigcalc.StatementError
			if !errors.As(err, &serr) {
				t.Errorf("evaluating %q: error %#v is not a StatementError", c.src, err)
			}
		})
	}
}

func asKind[E error](err error) bool {
	var e E
	return errors.As(err, &e)
}

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"push", "12", "12"},
		{"add", "1 2 +", "3"},
		{"worked", "1 2 3 * +", "7"},
		{"signed", "-7 2 /", "-3"},
		// Fractional literals contribute only their integer part,
		// truncated toward zero.
		{"fraction", "3.5", "3"},
		{"fraction-neg", "-3.5", "-3"},
		{"fraction-op", "3.9 2 *", "6"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := bigcalc.EvalPostfix(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: unexpected error %v", c.src, err)
			}
			if r.String() != c.want {
				t.Errorf("evaluating %q: want %s, got %s", c.src, c.want, r)
			}
		})
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   func(error) bool
	}{
		{"underflow", "1 +", asKind[*bigcalc.ExprError]},
		{"unknown-op", "1 2 %", asKind[*bigcalc.ExprError]},
		{"empty", "", asKind[*bigcalc.NameError]},
		{"leftover", "1 2", asKind[*bigcalc.NameError]},
		{"div-zero", "1 0 /", asKind[*bigcalc.DivisionError]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := bigcalc.EvalPostfix(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %s, not an error", c.src, r)
			}
			if !c.as(err) {
				t.Errorf("evaluating %q: wrong error kind %#v", c.src, err)
			}
		})
	}
}
