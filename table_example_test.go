package fixedtable_test

import (
	"errors"
	"fmt"

	"github.com/djdv/go-fixedtable"
)

func ExampleTable() {
	const capacity = 1024 // TODO(Anyone): Use contextual capacity.
	table, err := fixedtable.New(capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, word := range []string{"the", "cat", "the"} {
		count, err := table.Get(word)
		switch {
		case err == nil:
			err = table.Insert(word, count+1)
		case errors.Is(err, fixedtable.ErrKeyNotFound):
			err = table.Insert(word, 1)
		}
		if err != nil {
			panic(err) // TODO(Anyone): Handle error.
		}
	}
	key, value, _ := table.MostRecent()
	fmt.Printf("most recent: %s=%d\n", key, value)
	key, value, _ = table.LeastRecent()
	fmt.Printf("least recent: %s=%d\n", key, value)
	// Output:
	// most recent: the=2
	// least recent: cat=1
}

func ExampleTable_Insert() {
	table, err := fixedtable.New(1)
	if err != nil {
		panic(err)
	}
	if err := table.Insert("a", 1); err != nil {
		panic(err)
	}
	if err := table.Insert("b", 2); errors.Is(err, fixedtable.ErrTableFull) {
		fmt.Println("full")
	}
	if err := table.Remove("a"); err != nil {
		panic(err)
	}
	if err := table.Insert("b", 2); err == nil {
		fmt.Println("reused")
	}
	// Output:
	// full
	// reused
}
