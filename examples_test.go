package fgk

import (
	"fmt"
)

func Example() {
	a, err := ParseAlphabet("ab")
	if err != nil {
		panic(err)
	}
	c := NewCoding(a)
	bits, _ := c.EncodeString("aab")
	msg, _ := c.DecodeString(bits)
	fmt.Println(bits)
	fmt.Println(msg)
	// Output:
	// 011000011001100010
	// aab
}
