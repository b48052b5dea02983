package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/decode"
	"go.uber.org/zap"
)

type gap struct{ start, end int }

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var windowSec int
	var threshold float64
	var minGapMs int

	cmd := &cobra.Command{
		Use:   "inspect <audio>",
		Short: "Show the length, peak levels and quiet gaps of a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if windowSec <= 0 {
				return fmt.Errorf("window must be positive, got %d", windowSec)
			}
			buf, err := decode.File(args[0])
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			env, err := gramocut.NewEnvelope(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			ctx.logger.Debug("decoded", zap.String("path", args[0]), zap.Int("samples", len(buf.Samples)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Property", "Value"}, [][]string{
				{"File", args[0]},
				{"Sample rate", strconv.Itoa(buf.SampleRate) + " Hz"},
				{"Samples", strconv.Itoa(len(buf.Samples))},
				{"Duration", gramocut.FormatMs(env.Len())},
				{"Peak amplitude", fmt.Sprintf("%.4g", buf.Peak)},
			}))

			window := windowSec * 1000
			var rows [][]string
			for start := 0; start < env.Len(); start += window {
				end := min(start+window, env.Len())
				rows = append(rows, []string{
					gramocut.FormatMs(start),
					gramocut.FormatMs(end),
					fmt.Sprintf("%.3f", env.Peak(start, end)),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Start", "End", "Peak"}, rows, 2))

			gaps := quietGaps(env, float32(threshold), minGapMs)
			if len(gaps) == 0 {
				fmt.Fprintln(out, "No quiet gaps found.")
				return nil
			}
			rows = rows[:0]
			for i, g := range gaps {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					gramocut.FormatMs(g.start),
					gramocut.FormatMs(g.end),
					gramocut.FormatMs(g.end - g.start),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Gap start", "Gap end", "Length"}, rows, 0, 3))
			return nil
		},
	}

	cmd.Flags().IntVarP(&windowSec, "window", "w", 60, "Length of the peak level windows in seconds")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.02, "Normalized level below which the recording counts as quiet")
	cmd.Flags().IntVar(&minGapMs, "min-gap", 1500, "Shortest quiet stretch in milliseconds reported as a gap")
	return cmd
}

// quietGaps returns the runs of at least minLen milliseconds where the
// envelope stays below threshold. Runs touching either end of the recording
// are not gaps.
func quietGaps(env gramocut.Envelope, threshold float32, minLen int) []gap {
	var ret []gap
	start := -1
	for ms := range env.Len() {
		quiet := env.At(ms) < threshold
		switch {
		case quiet && start < 0:
			start = ms
		case !quiet && start >= 0:
			if start > 0 && ms-start >= minLen {
				ret = append(ret, gap{start, ms})
			}
			start = -1
		}
	}
	return ret
}
