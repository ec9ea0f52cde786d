// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
)

// AStar находит кратчайший путь от start до ближайшей из целей goals.
// Соседи перебираются в порядке NeighborDirections, равные приоритеты
// разрешаются порядком добавления в очередь, поэтому путь всегда один и тот же.
func AStar(start Cell, goals []Cell, passable func(Cell) bool) []Cell {
	if len(goals) == 0 {
		return nil
	}
	isGoal := make(map[Cell]bool, len(goals))
	for _, g := range goals {
		isGoal[g] = true
	}
	heuristic := func(c Cell) int {
		best := -1
		for _, g := range goals {
			if d := c.Distance(g); best < 0 || d < best {
				best = d
			}
		}
		return best
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Cell: start, Cost: 0, Priority: heuristic(start), Seq: seq})
	costSoFar := map[Cell]int{start: 0}
	closed := make(map[Cell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Cell] {
			continue
		}
		closed[current.Cell] = true
		if isGoal[current.Cell] {
			return reconstructPath(current)
		}
		for _, dir := range NeighborDirections {
			neighbor := current.Cell.Add(dir)
			if closed[neighbor] || !passable(neighbor) {
				continue
			}
			newCost := current.Cost + 1
			if old, exists := costSoFar[neighbor]; exists && newCost >= old {
				continue
			}
			costSoFar[neighbor] = newCost
			seq++
			heap.Push(pq, &Node{
				Cell:     neighbor,
				Cost:     newCost,
				Priority: newCost + heuristic(neighbor),
				Seq:      seq,
				Parent:   current,
			})
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell     Cell
	Cost     int
	Priority int
	Seq      int
	Parent   *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	var path []Cell
	for node != nil {
		path = append(path, node.Cell)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
