package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omnibuildplatform/omni-cql/app"
	"github.com/omnibuildplatform/omni-cql/common/store"
)

var execCmd = &cobra.Command{
	Use:   "exec <cql>",
	Short: "run one CQL statement and print the rows as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execStatement(args[0])
	},
}

func init() {
	RootCmd.AddCommand(execCmd)
}

func execStatement(stmt string) error {
	template, err := store.NewTemplateFactory(app.Logger).CreateTemplate(app.AppConfig.PersistentStore, app.Logger)
	if err != nil {
		return fmt.Errorf("unable to connect to database %v", err)
	}
	defer template.Close()

	rows, err := template.QueryForMapList(context.Background(), stmt)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
