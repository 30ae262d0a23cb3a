package bfs_test

import (
	"fmt"
	"strings"

	"github.com/velkans/hopgraph/bfs"
	"github.com/velkans/hopgraph/parse"
)

// ExampleShortestPath reproduces the classic degrees-of-separation
// question on a 10-person friendship network: how far is A from F?
func ExampleShortestPath() {
	g := parse.Build(`A B
B C
C D
D E
E F
A G
G H
H I
I J
J F
C G`)

	path, err := bfs.ShortestPath(g, "A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(path, " → "))
	fmt.Println("degrees of separation:", bfs.Degrees(path))
	// Output:
	// A → B → C → D → E → F
	// degrees of separation: 5
}

// ExampleTraverse layers a component level by level and reuses one
// traversal to answer several path queries.
func ExampleTraverse() {
	g := parse.Build(`hub a
hub b
a x
b y`)

	res, err := bfs.Traverse(g, "hub")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("visit order:", res.Order)

	toX, _ := res.PathTo("x")
	toY, _ := res.PathTo("y")
	fmt.Println("to x:", toX)
	fmt.Println("to y:", toY)
	// Output:
	// visit order: [hub a b x y]
	// to x: [hub a x]
	// to y: [hub b y]
}
