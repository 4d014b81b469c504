package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robert-malhotra/go-fixedarray/fixedarray"
)

func newWalkCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print every element in traversal order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			a, err := buildArray(cfg.Dims, logger)
			if err != nil {
				return err
			}
			return runWalk(cmd.OutOrStdout(), a, cfg.Order)
		},
	}
	cmd.Flags().String("order", orderBoth, "traversal order (first, last, both)")
	_ = v.BindPFlag("order", cmd.Flags().Lookup("order"))
	return cmd
}

func runWalk(w io.Writer, a *fixedarray.Array[int], order string) error {
	switch order {
	case orderFirst:
		walkFirstMajor(w, a)
	case orderLast:
		walkLastMajor(w, a)
	case orderBoth:
		walkFirstMajor(w, a)
		fmt.Fprintln(w)
		walkLastMajor(w, a)
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownOrder, order, orderFirst, orderLast, orderBoth)
	}
	return nil
}

func walkFirstMajor(w io.Writer, a *fixedarray.Array[int]) {
	fmt.Fprintf(w, "first-dimension-major over %v:\n", a.Extents())
	end := a.FirstMajorEnd()
	for c := a.FirstMajorBegin(); !c.Equal(end); c.Next() {
		fmt.Fprintf(w, "  %s = %d\n", c.Position(), c.Value())
	}
	fmt.Fprintf(w, "  end %s\n", end.Position())
}

func walkLastMajor(w io.Writer, a *fixedarray.Array[int]) {
	fmt.Fprintf(w, "last-dimension-major over %v:\n", a.Extents())
	end := a.LastMajorEnd()
	for c := a.LastMajorBegin(); !c.Equal(end); c.Next() {
		fmt.Fprintf(w, "  %s = %d\n", c.Position(), c.Value())
	}
	fmt.Fprintf(w, "  end %s\n", end.Position())
}
