package rexgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/rexgo"
	"github.com/hupe1980/rexgo/corpus/memory"
	"github.com/hupe1980/rexgo/rset"
	"github.com/hupe1980/rexgo/weight"
)

func ExampleExpander_Expand() {
	idx := memory.New()
	_ = idx.AddTerms(1, map[string]uint32{"cat": 3, "dog": 1})
	_ = idx.AddTerms(2, map[string]uint32{"cat": 1, "bird": 2})

	ex, _ := rexgo.New(idx)

	result, _ := ex.Expand(rset.New(1, 2)).
		MaxSize(2).
		Weighting(weight.NewFrequency()).
		Run(context.Background())

	fmt.Println("candidates:", result.CandidateCount())
	for term, w := range result.All() {
		fmt.Printf("%s %.1f\n", term, w)
	}
	// Output:
	// candidates: 3
	// cat 4.0
	// bird 2.0
}

func ExampleResultIterator() {
	idx := memory.New()
	_ = idx.AddTerms(1, map[string]uint32{"cat": 3, "dog": 1})
	_ = idx.AddTerms(2, map[string]uint32{"cat": 1, "bird": 2})

	ex, _ := rexgo.New(idx)

	result, _ := ex.Expand(rset.New(1, 2)).
		MaxSize(3).
		Decider(func(term string) bool { return term != "cat" }).
		Weighting(weight.NewFrequency()).
		Run(context.Background())

	for it := result.Iterator(); it.Next(); {
		fmt.Printf("%s %.1f\n", it.Term(), it.Weight())
	}
	// Output:
	// bird 2.0
	// dog 1.0
}
