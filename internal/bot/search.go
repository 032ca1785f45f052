package bot

import "container/heap"

// pathNode is one explored cell in the A* open list.
type pathNode struct {
	pos    Position
	g, h   float64
	parent *pathNode
	index  int // heap index
	seq    int // insertion order, breaks f-score ties oldest-first
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi := ol[i].g + ol[i].h
	fj := ol[j].g + ol[j].h
	if fi == fj {
		return ol[i].seq < ol[j].seq
	}
	return fi < fj
}
func (ol openList) Swap(i, j int) { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x any)   { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// AStar runs weighted best-first search from start to goal. neighbors yields
// the walkable successors of a cell, cost the edge weight, h the heuristic.
// With an admissible, consistent h the returned path has minimum total cost.
// Returns the cell sequence from start to goal inclusive, or nil when the
// open set empties without reaching goal.
func AStar(start, goal Position, neighbors func(Position) []Position, cost func(a, b Position) float64, h func(Position) float64) []Position {
	startNode := &pathNode{pos: start, g: 0, h: h(start)}
	ol := &openList{startNode}
	heap.Init(ol)

	closed := make(map[Position]bool)
	best := map[Position]*pathNode{start: startNode}
	seq := 0

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.pos == goal {
			return rebuildPath(cur)
		}
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		for _, next := range neighbors(cur.pos) {
			if closed[next] {
				continue
			}
			g := cur.g + cost(cur.pos, next)
			if prev, ok := best[next]; ok && g >= prev.g {
				continue
			}
			seq++
			node := &pathNode{pos: next, g: g, h: h(next), parent: cur, seq: seq}
			best[next] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

// rebuildPath walks the parent chain back to the start and reverses it.
func rebuildPath(end *pathNode) []Position {
	var path []Position
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Dijkstra is AStar with the zero heuristic: plain uniform-cost search.
func Dijkstra(start, goal Position, neighbors func(Position) []Position, cost func(a, b Position) float64) []Position {
	return AStar(start, goal, neighbors, cost, func(Position) float64 { return 0 })
}

// AStarClassic is the standard grid configuration: 4-directional unit-cost
// moves filtered by walkable, with the Manhattan heuristic. Manhattan is
// admissible and consistent on such grids, so the result is a shortest path.
func AStarClassic(start, goal Position, walkable func(Position) bool) []Position {
	if !walkable(goal) || !walkable(start) {
		return nil
	}
	neighbors := func(pos Position) []Position {
		out := make([]Position, 0, 4)
		for _, n := range Neighbours4(pos) {
			if walkable(n) {
				out = append(out, n)
			}
		}
		return out
	}
	cost := func(Position, Position) float64 { return 1 }
	h := func(p Position) float64 { return float64(Manhattan(p, goal)) }
	return AStar(start, goal, neighbors, cost, h)
}

// Reachable reports whether any path connects start and goal, by BFS flood
// fill. Cheaper than AStarClassic when only existence matters; used to filter
// candidate targets before scoring them.
func Reachable(start, goal Position, walkable func(Position) bool) bool {
	if !walkable(goal) {
		return false
	}
	if start == goal {
		return true
	}

	visited := map[Position]bool{start: true}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range Neighbours4(cur) {
			if visited[n] || !walkable(n) {
				continue
			}
			if n == goal {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}
