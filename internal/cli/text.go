package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansimarkup/pkg/logging"
)

func newRenderCmd(s *state) *cobra.Command {
	var (
		file      string
		noNewline bool
	)

	cmd := &cobra.Command{
		Use:     "render [markup...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.GetLogger("cli"), "render")
			out, err := s.parser.Parse(input)
			done()
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), out, !noNewline)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNewline)
	return cmd
}

func newClearCmd(s *state) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "clear [text...]",
		Short:   MsgClearShort,
		Long:    MsgClearLong,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.parser.Clear(input))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	return cmd
}

func newLengthCmd(s *state) *cobra.Command {
	var (
		file   string
		render bool
	)

	cmd := &cobra.Command{
		Use:     "length [text...]",
		Short:   MsgLengthShort,
		Long:    MsgLengthLong,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			if render {
				input, err = s.parser.Parse(input)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.parser.CleanLength(input))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVarP(&render, "markup", "m", false, MsgFlagMarkup)
	return cmd
}

func newDemoCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.parser.Parse(MsgDemo)
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), out, true)
		},
	}
}
