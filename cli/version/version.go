package cliversion

import (
	"fmt"

	"github.com/orbitl2/operator/common"
	"github.com/orbitl2/operator/versioning"
	"github.com/spf13/cobra"
)

func GetVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current operator version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(
		&versionCmdResult{
			Commit:    versioning.Commit,
			Branch:    versioning.Branch,
			BuildTime: versioning.BuildTime,
		},
	)
}

type versionCmdResult struct {
	Commit    string
	Branch    string
	BuildTime string
}

var _ common.ICommandResult = (*versionCmdResult)(nil)

func (r versionCmdResult) GetOutput() string {
	return fmt.Sprintf("Commit: %s\nBranch: %s\nBuild Time: %s", r.Commit, r.Branch, r.BuildTime)
}
