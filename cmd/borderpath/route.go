package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderpath/routing"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "route ORIGIN DESTINATION",
		Short:   "Print the shortest land route between two countries",
		Example: "  borderpath route CZE ITA",
		Args:    cobra.ExactArgs(2),
		RunE:    runRoute,
	}
}

func runRoute(cmd *cobra.Command, args []string) error {
	_, _, g, err := setup(cmd)
	if err != nil {
		return err
	}
	r, err := routing.New(g)
	if err != nil {
		return err
	}

	route, err := r.FindRoute(args[0], args[1])
	if err != nil {
		var failure routing.Failure
		if errors.As(err, &failure) {
			fmt.Fprintln(cmd.ErrOrStderr(), failure.Message())
			return errReported
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), route)

	return nil
}
