package bigcalc_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigcalc"
)

func FuzzPostfix(f *testing.F) {
	f.Add("x")
	f.Add("1+2*3")
	f.Add("((")
	f.Fuzz(func(t *testing.T, s string) {
		bigcalc.NewContext(bigcalc.SetVar("x", new(big.Int))).Postfix(s)
	})
}
