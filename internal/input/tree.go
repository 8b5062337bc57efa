package input

import (
	"fmt"

	"github.com/ja-he/jot/internal/control/action"
)

// Tree holds key sequences of a keymap, each terminating in an action, and
// tracks how far along a sequence the input so far has come.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
//
// Implements SimpleInputProcessor.
type Tree struct {
	Root    *Node
	Current *Node
}

// Node is a node in a Tree.
// It either has child nodes (it is a prefix of longer sequences) or an action
// (it terminates a sequence), never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// NewNode returns a pointer to a new inner node, without children so far.
func NewNode() *Node {
	return &Node{Children: map[Key]*Node{}}
}

// NewLeaf returns a pointer to a new node terminating a sequence in the given
// action.
func NewLeaf(a action.Action) *Node {
	return &Node{Action: a}
}

// ProcessInput advances along the current sequence by the given key.
// The key applies if it completes a sequence (whose action is then done) or
// continues one. A key that does neither drops the partial sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next, ok := t.Current.Children[k]
	switch {
	case !ok:
		t.Reset()
		return false
	case next.Action != nil:
		t.Reset()
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// Reset drops any partial sequence.
func (t *Tree) Reset() {
	t.Current = t.Root
}

// ConstructInputTree constructs a Tree for the given keymap.
// A keymap in which a sequence is a prefix of another (or a keyspec is
// invalid) yields an error, as the longer one could never be completed.
func ConstructInputTree(
	keymap map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for keyspec, a := range keymap {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("invalid keyspec '%s' (%w)", keyspec, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", a.Explain())
		}
		if err := root.insert(sequence, a); err != nil {
			return nil, fmt.Errorf("can't map keyspec '%s' (%w)", keyspec, err)
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// insert adds the sequence below this node.
func (n *Node) insert(sequence []Key, a action.Action) error {
	key, rest := sequence[0], sequence[1:]
	child, exists := n.Children[key]

	if len(rest) == 0 {
		if exists {
			return fmt.Errorf("is a prefix of (or equal to) another mapped sequence")
		}
		n.Children[key] = NewLeaf(a)
		return nil
	}

	if !exists {
		child = NewNode()
		n.Children[key] = child
	}
	if child.Action != nil {
		return fmt.Errorf("extends a mapped sequence")
	}
	return child.insert(rest, a)
}
