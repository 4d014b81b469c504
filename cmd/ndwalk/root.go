package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robert-malhotra/go-fixedarray/fixedarray"
	"github.com/robert-malhotra/go-fixedarray/internal/shape"
)

const envPrefix = "NDWALK"

// Traversal orders accepted by --order.
const (
	orderFirst = "first"
	orderLast  = "last"
	orderBoth  = "both"
)

// config is filled from flags, NDWALK_* environment variables and an
// optional config file, in that order of precedence.
type config struct {
	Dims    string `mapstructure:"dims"`
	Order   string `mapstructure:"order"`
	Verbose bool   `mapstructure:"verbose"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "ndwalk",
		Short: "Inspect fixed-size multi-dimensional arrays",
		Long: `ndwalk builds an integer array whose elements hold their row-major
offset and prints how the first-dimension-major and last-dimension-major
cursors walk it.

Examples:
  # Both traversal orders of a 2x3 array
  ndwalk walk --dims 2,3

  # Last-dimension-major order only
  NDWALK_ORDER=last ndwalk walk --dims 2x3x2

  # Bounds-checked element access
  ndwalk index --dims 2,3 1 2
  ndwalk index --dims 2,3 -- -1 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("dims", "2,3", "array extents, e.g. 2,3,4 or 2x3x4")
	root.PersistentFlags().BoolP("verbose", "v", false, "log construction details to stderr")
	_ = v.BindPFlag("dims", root.PersistentFlags().Lookup("dims"))
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newWalkCmd(v), newIndexCmd(v))
	return root
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("order", orderBoth)

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

func readConfig(v *viper.Viper) (config, error) {
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger that writes to w only in verbose mode.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "ndwalk: ", 0)
}

// buildArray returns an int array over dims whose elements hold their
// row-major offset.
func buildArray(dims string, logger *log.Logger) (*fixedarray.Array[int], error) {
	extents, err := shape.Parse(dims)
	if err != nil {
		return nil, err
	}
	values := make([]int, extents.NumElements())
	for i := range values {
		values[i] = i
	}
	a, err := fixedarray.FromSlice(values, extents...)
	if err != nil {
		return nil, err
	}
	logger.Printf("built %s with %d elements", a, a.Size())
	return a, nil
}

var errUnknownOrder = errors.New("unknown traversal order")
