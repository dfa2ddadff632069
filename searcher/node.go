package searcher

import (
	"fmt"
	"hex/game"
)

type NodeID int

const NoNode NodeID = -1

// Node is one position in a search tree. Parent and Children are indices into
// the owning Tree.
type Node struct {
	State        *game.Board
	Move         game.Move // Move that led here, NoMove for a root
	Wins         float64
	Visits       int
	Parent       NodeID
	Children     []NodeID
	UntriedMoves []game.Move
}

// Tree is an arena of nodes addressed by NodeID. It holds statistics for
// tree-based searchers; Minimax does not use it.
type Tree struct {
	rules game.Rules
	nodes []Node
}

func NewTree(rules game.Rules) *Tree {
	return &Tree{rules: rules}
}

// NewNode adds a parentless node. The node keeps its own copy of state, and its
// untried moves are computed once from that copy, so later changes to state
// by the caller are not observed.
func (t *Tree) NewNode(state *game.Board, move game.Move) NodeID {
	snapshot := state.Copy()
	t.nodes = append(t.nodes, Node{
		State:        snapshot,
		Move:         move,
		Parent:       NoNode,
		Children:     []NodeID{},
		UntriedMoves: t.rules.PossibleMoves(snapshot),
	})
	return NodeID(len(t.nodes) - 1)
}

// AddChild links child under parent, appending it to the parent's children.
// A node's parent can only be set once.
func (t *Tree) AddChild(parent, child NodeID) {
	if !t.valid(parent) || !t.valid(child) {
		panic(fmt.Sprintf("unknown node: parent %d, child %d", parent, child))
	}
	if parent == child {
		panic("node cannot be its own child")
	}
	if t.nodes[child].Parent != NoNode {
		panic(fmt.Sprintf("node %d already has a parent", child))
	}

	t.nodes[child].Parent = parent
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
}

// Node returns the node stored under id. The pointer is valid until the next
// call to NewNode.
func (t *Tree) Node(id NodeID) *Node {
	if !t.valid(id) {
		panic(fmt.Sprintf("unknown node %d", id))
	}
	return &t.nodes[id]
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
