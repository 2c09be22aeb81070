package buzzhash_test

import (
	"fmt"

	"github.com/zero-day-ai/ejbmeta/buzzhash"
)

func ExampleHexMid32() {
	fmt.Println(buzzhash.HexMid32("Claim", false))
	fmt.Println(buzzhash.HexMid32("Claim", true))
	// Output:
	// e784d8fb
	// e784d8fb
}
