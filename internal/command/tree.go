package command

import (
	"sort"

	"github.com/keshon/tvc/internal/errs"
)

// Node is one name in the command tree. Aliases get their own node sharing
// the same Cmd.
type Node struct {
	Cmd         Command
	Subcommands map[string]*Node
}

func newNode(cmd Command) *Node {
	return &Node{Cmd: cmd, Subcommands: make(map[string]*Node)}
}

// CommandTree maps command names, aliases and subcommand paths to commands.
type CommandTree struct {
	root *Node
}

// NewTree creates a new empty command tree.
func NewTree() *CommandTree {
	return &CommandTree{root: newNode(nil)}
}

// Register inserts a command under its name and aliases, with all its
// subcommands below each of them.
func (t *CommandTree) Register(cmd Command) {
	insert(t.root, cmd)
}

func insert(parent *Node, cmd Command) {
	for _, name := range append([]string{cmd.Name()}, cmd.Aliases()...) {
		n := newNode(cmd)
		parent.Subcommands[name] = n
		for _, sub := range cmd.Subcommands() {
			insert(n, sub)
		}
	}
}

// Get returns a top-level command by name or alias.
func (t *CommandTree) Get(name string) (Command, bool) {
	n, ok := t.root.Subcommands[name]
	if !ok {
		return nil, false
	}
	return n.Cmd, true
}

// Resolve follows args down the tree as far as they name subcommands and
// returns the deepest node with the arguments left over.
func (t *CommandTree) Resolve(args []string) (*Node, []string, error) {
	n := t.root
	for len(args) > 0 {
		next, ok := n.Subcommands[args[0]]
		if !ok {
			break
		}
		n, args = next, args[1:]
	}
	if n.Cmd == nil {
		return nil, nil, errs.ErrUnknownCommand
	}
	return n, args, nil
}

// All returns every command in the tree once, sorted by name.
func (t *CommandTree) All() []Command {
	var cmds []Command
	seen := make(map[Command]bool)

	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Cmd != nil && !seen[n.Cmd] {
			seen[n.Cmd] = true
			cmds = append(cmds, n.Cmd)
		}
		for _, sub := range n.Subcommands {
			walk(sub)
		}
	}
	walk(t.root)

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
