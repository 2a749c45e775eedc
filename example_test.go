package jot_test

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/jot"
)

func Example() {
	dir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	store, err := jot.New(dir, jot.WithAutoInit(true))
	if err != nil {
		panic(err)
	}

	first, _ := store.Create(ctx)
	first.Title = "Groceries"
	first.Content = "<b>milk</b>, eggs"
	if _, err := store.Update(ctx, first); err != nil {
		panic(err)
	}

	second, _ := store.Create(ctx)
	second.Title = "Ideas"
	_, _ = store.Update(ctx, second)

	reopened, err := jot.New(dir, jot.WithMustExist(true))
	if err != nil {
		panic(err)
	}
	for _, n := range reopened.Notes() {
		fmt.Println(n.Title)
	}
	// Output:
	// Ideas
	// Groceries
}
