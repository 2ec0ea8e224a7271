package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput returns the command's input text: the arguments joined by
// spaces, the --file contents ("-" for stdin), or stdin. A single trailing
// newline of file and stdin input is dropped.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if file == "" && len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var (
		data []byte
		err  error
	)
	switch file {
	case "", "-":
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf(MsgErrReadInput, err)
		}
	default:
		data, err = os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf(MsgErrReadFile, file, err)
		}
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
