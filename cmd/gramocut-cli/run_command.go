package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/decode"
	"github.com/vsariola/gramocut/editor"
	"gopkg.in/yaml.v3"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var asYaml bool

	cmd := &cobra.Command{
		Use:   "run <audio> <script.yml>",
		Short: "Apply a command script to a recording and print the resulting tracks",
		Long: `Apply a command script to a recording and print the resulting tracks.

The script is a yaml list with one command per item:

  - seek: 0
  - create: 180000
  - set: {index: 0, start: 0, end: 175000, title: Intro}
  - cursor: 0.5
  - zoom: 0.8
  - pan: 5000
  - delete: 0
  - reset: true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			script, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			cmds, err := editor.UnmarshalCommands(script)
			if err != nil {
				return err
			}
			buf, err := decode.File(args[0])
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			m := editor.NewModel(nil, ctx.logger, cfg)
			if err := m.SetAudio(buf, args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			view, err := m.ApplyAll(cmds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYaml {
				data, err := yaml.Marshal(m.Tracks())
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Label", "Color", "Start", "End", "Length"}, trackRows(m.TrackViews()), 0, 3, 4, 5))
			fmt.Fprintf(out, "View %s - %s, cursor %s. Tracks cover %s of %s.\n",
				gramocut.FormatMs(view.Start), gramocut.FormatMs(view.End), gramocut.FormatMs(view.Cursor),
				gramocut.FormatMs(m.Duration()), gramocut.FormatMs(m.Length()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYaml, "yaml", false, "Print the tracks as yaml that can be pasted into the editor")
	return cmd
}

func trackRows(views []editor.TrackView) [][]string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			fmt.Sprint(v.Index + 1),
			v.Label,
			v.Color.Name,
			gramocut.FormatMs(v.Start),
			gramocut.FormatMs(v.End),
			gramocut.FormatMs(v.Len()),
		})
	}
	return rows
}
