package xresult_test

import (
	"fmt"
	"time"

	"github.com/omeyang/resultcache/pkg/storage/xresult"
)

func Example() {
	// 最多保留 3 条最近结果，不过期
	cache, err := xresult.New[int](xresult.Config{Capacity: 3})
	if err != nil {
		panic(err)
	}

	for _, score := range []int{10, 20, 30, 40} {
		cache.Add(score)
	}

	fmt.Println("All:", cache.All())
	fmt.Println("Latest(2):", cache.Latest(2))
	oldest, _ := cache.PeekOldest()
	fmt.Println("Oldest:", oldest)
	fmt.Println("Len:", cache.Len())

	// Output:
	// All: [20 30 40]
	// Latest(2): [30 40]
	// Oldest: 20
	// Len: 3
}

func Example_ttl() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache, err := xresult.New[string](
		xresult.Config{Capacity: 5, TTL: time.Second},
		xresult.WithClock(clock),
	)
	if err != nil {
		panic(err)
	}

	cache.Add("a")
	now = now.Add(100 * time.Millisecond)
	cache.Add("b")

	now = now.Add(1900 * time.Millisecond)
	fmt.Println("after 2s:", cache.All())

	cache.Add("c")
	now = now.Add(100 * time.Millisecond)
	fmt.Println("after 2.1s:", cache.All())

	// Output:
	// after 2s: []
	// after 2.1s: [c]
}

func ExampleNew_invalidConfig() {
	_, err := xresult.New[int](xresult.Config{Capacity: 0})
	fmt.Println(err)

	// Output:
	// xresult: invalid configuration: xresult: capacity must be at least 1
}
