package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderpath/bfs"
	"github.com/katalvlaran/borderpath/countrygraph"
)

func newReachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reach ORIGIN",
		Short:   "List countries reachable within a number of border crossings",
		Example: "  borderpath reach PRT --depth 2",
		Args:    cobra.ExactArgs(1),
		RunE:    runReach,
	}
	cmd.Flags().Int("depth", 1, "maximum border crossings (0 = unlimited)")

	return cmd
}

func runReach(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 0 {
		return fmt.Errorf("--depth must not be negative, got %d", depth)
	}
	_, _, g, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := bfs.FromCode(g, args[0], bfs.WithMaxDepth(depth))
	if errors.Is(err, bfs.ErrStartNotFound) {
		code := countrygraph.NormalizeCode(args[0])
		if code == "" {
			code = args[0]
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown country code: %s\n", code)
		return errReported
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for d, ids := range res.Levels() {
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i], _ = g.CodeByID(id)
		}
		fmt.Fprintf(out, "%d: %s\n", d, strings.Join(names, " "))
	}

	return nil
}
