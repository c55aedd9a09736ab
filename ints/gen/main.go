// Generates base10k.txt, the table of all four digit decimal numbers in
// sequence used by the ints codec.
package main

import (
	"fmt"
	"os"

	"fastjson.lol/chk"
)

func main() {
	b := make([]byte, 0, 40000)
	for i := 0; i < 10000; i++ {
		b = fmt.Appendf(b, "%04d", i)
	}
	if err := os.WriteFile("base10k.txt", b, 0o644); chk.F(err) {
		os.Exit(1)
	}
}
