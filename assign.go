package bigcalc

import (
	"math/big"
	"strings"
)

// Assign executes an assignment statement of the form "name = value",
// where value is either a base-10 signed integer literal or the name of a
// variable already in the context. Only the first = splits the statement;
// both sides are trimmed. The name and any value identifier must be
// letters only. On error the context is unchanged: a malformed name or
// value yields a *IdentError, and a value naming a missing variable
// yields a *NameError.
func (ctx *Context) Assign(stmt string) error {
	name, val, _ := strings.Cut(stmt, "=")
	name = strings.TrimSpace(name)
	val = strings.TrimSpace(val)
	if !identPat.MatchString(name) {
		return &IdentError{Ident: name}
	}
	if n, ok := new(big.Int).SetString(val, 10); ok {
		ctx.Set(name, n)
		return nil
	}
	if !identPat.MatchString(val) {
		return &IdentError{Ident: val}
	}
	v := ctx.Lookup(val)
	if v == nil {
		return &NameError{Name: val}
	}
	ctx.Set(name, v)
	return nil
}
