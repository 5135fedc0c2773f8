package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"thirdcoast.systems/canvas/pkg/ffmpeg"
	"thirdcoast.systems/canvas/pkg/resolution"
	"thirdcoast.systems/canvas/pkg/utils/filename"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "canvas",
		Short:         "Inspect output canvas presets and plan exports onto them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newShowCmd(), newProbeCmd(), newPlanCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every canvas preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tSIZE\tASPECT\tORIENTATION\tPIXELS")
			for _, p := range resolution.Presets() {
				writeRow(tw, p, resolution.MustLookup(p))
			}
			return tw.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset>",
		Short: "Show a single canvas preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolution.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, knownPresets())
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			writeRow(tw, p, resolution.MustLookup(p))
			return tw.Flush()
		},
	}
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Probe a video with ffprobe and suggest a canvas preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probe, err := ffmpeg.Probe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			src := probe.Resolution()
			p := resolution.Suggest(src)
			slog.Debug("probed source", "file", args[0], "coded", fmt.Sprintf("%dx%d", probe.Width, probe.Height), "rotation", probe.Rotation)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "source\t%s\t%s\t%s\n", src, src.AspectRatio(), src.Orientation())
			fmt.Fprint(tw, "suggested\t")
			writeRow(tw, p, resolution.MustLookup(p))
			return tw.Flush()
		},
	}
}

func newPlanCmd() *cobra.Command {
	var (
		source string
		probe  string
		mode   string
		input  string
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "plan [preset]",
		Short: "Print the ffmpeg arguments that render a source onto a preset canvas",
		Long: "Print the ffmpeg arguments that render a source onto a preset canvas.\n" +
			"The source size comes from --source or from probing --probe; without a\n" +
			"preset argument the largest preset that fits the source is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := resolveSource(cmd.Context(), source, probe)
			if err != nil {
				return err
			}

			p := resolution.Suggest(src)
			if len(args) == 1 {
				if p, err = resolution.Parse(args[0]); err != nil {
					return fmt.Errorf("%w (known: %s)", err, knownPresets())
				}
			}

			m, err := ffmpeg.ParseCanvasMode(mode)
			if err != nil {
				return err
			}

			if input == "" {
				input = probe
			}
			if input == "" {
				input = "input.mp4"
			}
			if output == "" {
				output = filename.ForPreset(input, p, "")
			}

			opts := append(ffmpeg.PresetExportHQ(), ffmpeg.PresetExportAAC()...)
			plan, err := ffmpeg.PlanCanvas(src, p, m, input, output, opts...)
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), plan, asJSON)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source video size as WxH, e.g. 1920x1080")
	cmd.Flags().StringVar(&probe, "probe", "", "probe this file with ffprobe for the source size")
	cmd.Flags().StringVar(&mode, "mode", string(ffmpeg.ModeFit), "fit (letterbox) or fill (center crop)")
	cmd.Flags().StringVar(&input, "in", "", "input file (defaults to --probe, then input.mp4)")
	cmd.Flags().StringVar(&output, "out", "", "output file (defaults to <input>-<preset>.mp4)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full plan as JSON")
	cmd.MarkFlagsMutuallyExclusive("source", "probe")

	return cmd
}

func resolveSource(ctx context.Context, source, probe string) (resolution.Resolution, error) {
	switch {
	case source != "":
		return resolution.ParseDimensions(source)
	case probe != "":
		result, err := ffmpeg.Probe(ctx, probe)
		if err != nil {
			return resolution.Resolution{}, err
		}
		return result.Resolution(), nil
	default:
		return resolution.Resolution{}, fmt.Errorf("one of --source or --probe is required")
	}
}

func writeRow(w io.Writer, p resolution.Preset, r resolution.Resolution) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		p, r, r.AspectRatio(), r.Orientation(), humanize.SIWithDigits(float64(r.Pixels()), 1, "px"))
}

func writePlan(w io.Writer, plan *ffmpeg.CanvasPlan, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	_, err := fmt.Fprintln(w, "ffmpeg "+strings.Join(quoteArgs(plan.Args), " "))
	return err
}

// quoteArgs single-quotes arguments containing shell metacharacters.
func quoteArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " ()*,'\"$;&|<>") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		out[i] = a
	}
	return out
}

func knownPresets() string {
	presets := resolution.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
