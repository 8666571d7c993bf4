package cli

import (
	"fmt"

	"github.com/idursun/clgl/internal/scene"
	"github.com/sahilm/fuzzy"
)

// hideNodes makes the named nodes invisible. Unknown names are an error that
// suggests the closest existing name.
func hideNodes(root *scene.Root, names []string) error {
	for _, name := range names {
		n := root.Find(name)
		if n == nil {
			return unknownNode(root, name)
		}
		n.Visible = false
	}
	return nil
}

func unknownNode(root *scene.Root, name string) error {
	if suggestion := closestName(nodeNames(root), name); suggestion != "" {
		return fmt.Errorf("no node named %q (did you mean %q?)", name, suggestion)
	}
	return fmt.Errorf("no node named %q", name)
}

func nodeNames(root *scene.Root) []string {
	var names []string
	root.Walk(func(n *scene.Node) bool {
		if n.Name != "" {
			names = append(names, n.Name)
		}
		return true
	})
	return names
}

func closestName(names []string, name string) string {
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
