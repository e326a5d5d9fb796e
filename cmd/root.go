package cmd

import (
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/omnibuildplatform/omni-cql/app"
	_ "github.com/omnibuildplatform/omni-cql/common/store/cassandra"
)

var (
	iTag       string
	iCommitID  string
	iReleaseAt string
	configDir  string
)

var RootCmd = &cobra.Command{
	Use: "omni-cql",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.Bootstrap(configDir, &app.ApplicationInfo{
			Tag:       iTag,
			CommitID:  iCommitID,
			ReleaseAt: iReleaseAt,
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "configDir", "./config", "directory holding app.toml and environment overlays")
}

func Execute(tag, commitID, releaseAt string) {
	iTag = tag
	iCommitID = commitID
	iReleaseAt = releaseAt
	if err := RootCmd.Execute(); err != nil {
		color.Error.Printf("%v", err)
		os.Exit(1)
	}
}
