// pkg/dict/example_test.go
package dict_test

import (
	"fmt"

	"github.com/ashoka-versa/libdict/pkg/dict"
)

func Example() {
	d, err := dict.New[string, int](dict.KindPathReduction, dict.Compare[string])
	if err != nil {
		panic(err)
	}

	d.Insert("cherry", 3, false)
	d.Insert("apple", 1, false)
	d.Insert("banana", 2, false)

	d.Walk(func(key string, value int) bool {
		fmt.Println(key, value)
		return true
	})

	// Output:
	// apple 1
	// banana 2
	// cherry 3
}

func ExampleDict_cursor() {
	d, _ := dict.New[int, string](dict.KindPathReduction, dict.Compare[int])
	for _, key := range []int{30, 10, 20} {
		d.Insert(key, fmt.Sprintf("v%d", key), false)
	}

	c := d.Cursor()
	defer c.Close()

	for ok := c.Last(); ok; ok = c.Prev() {
		key, _ := c.Key()
		value, _ := c.Value()
		fmt.Println(key, value)
	}

	// Output:
	// 30 v30
	// 20 v20
	// 10 v10
}
