package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readSource reads the FILE argument, or standard input for "-" and for
// no argument. The returned name labels positions in error messages.
func (o *options) readSource(cmd *cobra.Command, args []string) (name, src string, err error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	var data []byte
	if path == "-" {
		name = o.cfg.Filename
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", usageError{err}
	}

	o.log.Debug("source read", "name", name, "bytes", len(data))
	return name, string(data), nil
}
