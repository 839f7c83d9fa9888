package bigcalc_test

import (
	"fmt"
	"log"

	"github.com/zephyrtronium/bigcalc"
)

func Example() {
	ctx := bigcalc.NewContext()
	if err := ctx.Assign("a = 600000000000000000000"); err != nil {
		log.Fatal(err)
	}
	r, err := ctx.Eval("a/7+1")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r)
	// Output:
	// 85714285714285714286
}
