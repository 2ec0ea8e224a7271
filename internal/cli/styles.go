package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newStylesCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Short:   MsgStylesShort,
		Long:    MsgStylesLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := s.parser.Styles()
			data := pterm.TableData{{"Tag", "Code", "Sample"}}
			for _, name := range table.Names() {
				sample, err := s.parser.Parse(fmt.Sprintf("<%s>%s</%s>", name, name, name))
				if err != nil {
					return err
				}
				data = append(data, []string{"<" + name + ">", fmt.Sprintf("%q", table[name]), sample})
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), out, true)
		},
	}
}
