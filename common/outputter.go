package common

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
}

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	return &textOutputFormatter{
		stdOut: cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

type textOutputFormatter struct {
	stdOut io.Writer
	errOut io.Writer

	result ICommandResult
	err    error
}

func (o *textOutputFormatter) SetError(err error) {
	o.err = err
}

func (o *textOutputFormatter) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *textOutputFormatter) WriteOutput() {
	if o.err != nil {
		_, _ = fmt.Fprintln(o.errOut, o.err.Error())

		return
	}

	if o.result != nil {
		_, _ = fmt.Fprintln(o.stdOut, o.result.GetOutput())
	}
}
