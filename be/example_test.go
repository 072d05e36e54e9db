package be_test

import (
	"context"
	"fmt"

	"github.com/vareng/bucketelim/be"
	"github.com/vareng/bucketelim/diagram"
	"github.com/vareng/bucketelim/factor"
	"github.com/vareng/bucketelim/variable"
)

// ExampleEngine_Run computes the best of two actions scored by a single
// utility factor, with no chance variables to observe.
func ExampleEngine_Run() {
	d, _ := variable.New(0, 2, variable.Decision)
	util, _ := factor.New(variable.NewSet(d), []float64{4, 9}, factor.Utility)

	model, _ := diagram.New([]variable.Variable{d}, []factor.Factor{util})
	result, err := be.New(model, be.DefaultConfig()).Run(context.Background())
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	policy, _ := result.Policy(0)
	fmt.Printf("MEU=%.1f policy=%v\n", result.MEU(), policy.Entries())
	// Output: MEU=9.0 policy=[4 9]
}
