package input

import (
	"sort"
	"strings"
)

// Help maps key sequences (in config notation) to explanations of what they
// do.
type Help = map[string]string

// GetHelp returns the input help map for this tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the input help map for the sequences below this node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
	} else {
		for k, c := range n.Children {
			for partialCombo, action := range c.GetHelp() {
				result[ToConfigIdentifierString(k)+partialCombo] = action
			}
		}
	}

	return result
}

// FormatHelp renders help on a single line, e.g.
//
//	"<esc>/n: cancel, y: delete"
//
// Sequences with the same explanation are grouped; groups are ordered by
// explanation.
func FormatHelp(help Help) string {
	byExplanation := map[string][]string{}
	for sequence, explanation := range help {
		byExplanation[explanation] = append(byExplanation[explanation], sequence)
	}

	explanations := make([]string, 0, len(byExplanation))
	for explanation := range byExplanation {
		explanations = append(explanations, explanation)
	}
	sort.Strings(explanations)

	parts := make([]string, 0, len(explanations))
	for _, explanation := range explanations {
		sequences := byExplanation[explanation]
		sort.Strings(sequences)
		parts = append(parts, strings.Join(sequences, "/")+": "+explanation)
	}
	return strings.Join(parts, ", ")
}
