package bigcalc

import (
	"math/big"
	"strconv"
	"strings"
)

// Context is a variable store for evaluating statements. It is not safe to
// use a Context concurrently.
type Context struct {
	names map[string]*big.Int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Int
	}
	varsopt map[string]*big.Int
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val *big.Int) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]*big.Int) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{names: make(map[string]*big.Int)}
	return ctx.Clone(opts...)
}

// Set sets the value of a variable, creating it if necessary. The context
// stores a copy of value. Returns ctx for chaining.
func (ctx *Context) Set(name string, value *big.Int) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]*big.Int)
	}
	ctx.names[name] = new(big.Int).Set(value)
	return ctx
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the context, then the result is nil.
func (ctx *Context) Lookup(name string) *big.Int {
	v := ctx.names[name]
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// Clone creates a copy of a context and applies options to it. Later
// assignments in either context do not affect the other.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]*big.Int, len(ctx.names))}
	// Stored values are never mutated in place, so sharing them is fine.
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = new(big.Int).Set(opt.val)
		case varsopt:
			for k, v := range opt {
				n.names[k] = new(big.Int).Set(v)
			}
		default:
			panic("bigcalc: unknown option type")
		}
	}
	return &n
}

// EvalPostfix reduces a space-separated postfix sequence to a single
// integer over a value stack. A token matching an optionally signed
// integer, possibly with a fractional part, pushes its integer value; the
// fraction of a literal like "3.5" is truncated, not rounded. Any other
// token is applied as a binary operator. Division truncates toward zero;
// a zero divisor yields a *DivisionError. A reduction with fewer than two
// operands yields a *ExprError, and a final stack holding anything other
// than exactly one value yields a *NameError, since a variable dropped
// during conversion is what leaves the stack short.
func EvalPostfix(postfix string) (*big.Int, error) {
	var stack []*big.Int
	for _, tok := range strings.Fields(postfix) {
		if numberPat.MatchString(tok) {
			if dot := strings.IndexByte(tok, '.'); dot >= 0 {
				tok = tok[:dot]
			}
			v, ok := new(big.Int).SetString(tok, 10)
			if !ok {
				return nil, &ExprError{Expr: postfix, Reason: "invalid number " + strconv.Quote(tok)}
			}
			stack = append(stack, v)
			continue
		}
		if len(stack) < 2 {
			return nil, &ExprError{Expr: postfix, Reason: "invalid postfix expression"}
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		switch tok {
		case "+":
			l.Add(l, r)
		case "-":
			l.Sub(l, r)
		case "*":
			l.Mul(l, r)
		case "/":
			if r.Sign() == 0 {
				return nil, &DivisionError{X: l}
			}
			l.Quo(l, r)
		default:
			return nil, &ExprError{Expr: postfix, Reason: "unknown operator " + strconv.Quote(tok)}
		}
	}
	if len(stack) != 1 {
		return nil, &NameError{}
	}
	return stack[0], nil
}

// Eval converts an infix expression to postfix and evaluates it.
func (ctx *Context) Eval(expr string) (*big.Int, error) {
	p, err := ctx.Postfix(expr)
	if err != nil {
		return nil, err
	}
	return EvalPostfix(p)
}

// EvalString is a shortcut to evaluate an expression in a fresh context.
func EvalString(expr string, opts ...ContextOption) (*big.Int, error) {
	return NewContext(opts...).Eval(expr)
}
