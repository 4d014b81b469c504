package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newIndexCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "index <i0> [i1 ...]",
		Short: "Print the element at a multi-index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			idx := make([]int, len(args))
			for i, s := range args {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("parsing index %q: %w", s, err)
				}
				idx[i] = n
			}

			a, err := buildArray(cfg.Dims, logger)
			if err != nil {
				return err
			}
			val, err := a.At(idx...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v = %d\n", idx, val)
			return nil
		},
	}
}
