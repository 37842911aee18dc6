package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/colors"
	"github.com/acaird/rootplot/pkg/config"
	"github.com/acaird/rootplot/pkg/data"
	"github.com/acaird/rootplot/pkg/hist"
	"github.com/acaird/rootplot/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var verbose bool
	logger := zap.NewExample()

	root := &cobra.Command{
		Use:           "rootplot",
		Short:         "rootplot draws styled plots from columns of numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				dev, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = dev
			}
			cmd.SetContext(logging.With(cmd.Context(), logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newColorsCmd())
	root.AddCommand(newDivideCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Sugar().Fatalf("rootplot: %v", err)
	}
}

func newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render the plot described by a TOML file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sugar := logging.From(ctx).Sugar()

			p, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				p.Output = output
			}
			c, err := p.Build(ctx, canvas.New())
			if err != nil {
				return err
			}
			if err := c.SaveAs(ctx, p.Output); err != nil {
				return fmt.Errorf("couldn't write output to %q: %w", p.Output, err)
			}
			sugar.Infof("wrote chart to \"%s\"", p.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the output file (default: config file with .png)")
	return cmd
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors [name...]",
		Short: "Print named colors and their RGB values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			names := args
			if len(names) == 0 {
				names = colors.Names()
			}
			r := colors.NewResolver(canvas.New())
			for _, name := range names {
				d := r.Resolve(colors.Parse(name), 1)
				if !d.HasID {
					logging.From(ctx).Warn("color is not available", zap.String("color", name))
					continue
				}
				if _, ok := d.Value.Name(); !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%-22s engine color %d\n", name, d.ID)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s  (%.3f, %.3f, %.3f)\n",
					strings.ToLower(name), d.RGB.Hex(), d.RGB.R, d.RGB.G, d.RGB.B)
			}
			return nil
		},
	}
}

func newDivideCmd() *cobra.Command {
	var (
		b         = data.Binning{NBins: 10, XMin: 0, XMax: 10}
		column    int
		delimiter string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "divide [numerator] [denominator]",
		Short: "Histogram one column of two files and divide them bin by bin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			num, err := data.LoadHistogram(ctx, args[0], column, b, delimiter)
			if err != nil {
				return err
			}
			den, err := data.LoadHistogram(ctx, args[1], column, b, delimiter)
			if err != nil {
				return err
			}
			if err := hist.DivideBinwise(num, den); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hist.Describe(num))
			for i := 1; i <= num.NBins(); i++ {
				fmt.Fprintf(out, "%4d %12g %12g\n", i, num.BinCenter(i), num.BinContent(i))
			}
			if output != "" {
				return canvas.New().SaveDrawable(ctx, num, output, "", 0, 0)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&b.NBins, "bins", b.NBins, "number of bins")
	cmd.Flags().Float64Var(&b.XMin, "min", b.XMin, "lower edge of the first bin")
	cmd.Flags().Float64Var(&b.XMax, "max", b.XMax, "upper edge of the last bin")
	cmd.Flags().IntVar(&column, "column", 0, "column to histogram, counting from 0")
	cmd.Flags().StringVar(&delimiter, "delimiter", data.DefaultDelimiter, "column delimiter")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also draw the ratio to this PNG file")
	return cmd
}
