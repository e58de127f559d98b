package chain_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/pkg/model"
)

// ExampleNew runs a two-state absorbing chain, whose outcome does not depend on the seed.
func ExampleNew() {
	eng, err := chain.New(model.Config{
		States: []string{"A", "B"},
		Matrix: [][]float64{{1, 0}, {0, 1}},
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Run(context.Background(), "A", 5, 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Trials[0])
	fmt.Printf("frequency(A)=%.2f dwell(A)=%.2f\n", res.Frequencies["A"], res.DwellTimes["A"])
	_, seen := res.Frequencies["B"]
	fmt.Println("B observed:", seen)
	// Output:
	// [A A A A A]
	// frequency(A)=1.00 dwell(A)=1.00
	// B observed: false
}
