package btcore_test

import "github.com/go-treewidth/btcore"

// newPath5 builds a 5-vertex path P5 on labels 1..5 with edges
// (1,2) (2,3) (3,4) (4,5).
func newPath5() *btcore.Index[int] {
	g := btcore.NewLabelGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	return btcore.NewIndex(g)
}

// newK4 builds the complete graph K4 on labels 1..4.
func newK4() *btcore.Index[int] {
	g := btcore.NewLabelGraph[int]()
	labels := []int{1, 2, 3, 4}
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			g.AddEdge(labels[i], labels[j])
		}
	}
	return btcore.NewIndex(g)
}

// newCycle4 builds the 4-cycle C4 on labels 1..4 with edges
// (1,2) (2,3) (3,4) (4,1).
func newCycle4() *btcore.Index[int] {
	g := btcore.NewLabelGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)
	return btcore.NewIndex(g)
}

// newAsymmetricGraph builds a 5-vertex graph with uneven vertex degrees
// (2, 3, 1, 3, 1): V={1..5}, E={(1,2),(1,4),(2,3),(2,4),(4,5)}. Like any
// undirected graph built with AddEdge, its adjacency rows are symmetric.
func newAsymmetricGraph() *btcore.Index[int] {
	g := btcore.NewLabelGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 4)
	g.AddEdge(2, 3)
	g.AddEdge(2, 4)
	g.AddEdge(4, 5)
	return btcore.NewIndex(g)
}

// newStar builds a star K1,4 with center "c" and leaves "l1".."l4".
func newStar() *btcore.Index[string] {
	g := btcore.NewLabelGraph[string]()
	g.AddEdge("c", "l1")
	g.AddEdge("c", "l2")
	g.AddEdge("c", "l3")
	g.AddEdge("c", "l4")
	return btcore.NewIndex(g)
}

// newGatewayChain builds a 4-vertex tree: "x" has leaf "a" and a second
// neighbor "m" that is itself a gateway to a further leaf "n" (edges
// (x,a) (x,m) (m,n)). "n" is two hops from "x" and only reachable through
// "m", so it stays outside N({x}) until "m" itself joins a candidate set.
func newGatewayChain() *btcore.Index[string] {
	g := btcore.NewLabelGraph[string]()
	g.AddEdge("x", "a")
	g.AddEdge("x", "m")
	g.AddEdge("m", "n")
	return btcore.NewIndex(g)
}
