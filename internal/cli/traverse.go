package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/internal/ctxlog"
	"github.com/katalvlaran/lvltree/token"
	"github.com/katalvlaran/lvltree/traverse"
	"github.com/katalvlaran/lvltree/tree"
)

// newTraverseCommand creates the "traverse" command.
func newTraverseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "traverse [values...]",
		Short: "Print the four traversal orders of a level-order array",
		Long: `Build a binary tree from a comma-separated level-order array and print its
traversals. Use "null" for a missing child. Arguments are joined with commas;
with no arguments the array is read from standard input.

Examples:
  lvltree traverse "1,2,3,null,4"
  lvltree traverse 1 2 3 null 4 --json
  echo "5, 3, 8" | lvltree traverse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTraverse(cmd, args)
		},
	}
}

// readInput joins args with commas, or reads all of stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, token.Separator), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// buildFromArgs parses and builds the tree, honoring Limits.MaxNodes.
func (a *app) buildFromArgs(cmd *cobra.Command, args []string) (*tree.Tree, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	seq, err := token.Parse(text)
	if err != nil {
		return nil, err
	}
	t, err := tree.Build(seq, tree.WithMaxNodes(a.cfg.Limits.MaxNodes))
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(cmd.Context()).Debug("Built tree.", "input", len(seq), "nodes", t.Len(), "height", t.Height())

	return t, nil
}

func (a *app) runTraverse(cmd *cobra.Command, args []string) error {
	t, err := a.buildFromArgs(cmd, args)
	if err != nil {
		return err
	}
	orders := traverse.All(t)

	out := cmd.OutOrStdout()
	if a.flags.json {
		return writeJSON(out, orders)
	}
	fmt.Fprintf(out, "BFS: %s\n", token.FormatValues(orders.LevelOrder))
	fmt.Fprintf(out, "DFS: %s\n", token.FormatValues(orders.Preorder))
	fmt.Fprintf(out, "Inorder: %s\n", token.FormatValues(orders.Inorder))
	fmt.Fprintf(out, "Postorder: %s\n", token.FormatValues(orders.Postorder))

	return nil
}
