package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omnibuildplatform/omni-cql/app"
	"github.com/omnibuildplatform/omni-cql/common/store"
)

var databaseCmd = &cobra.Command{
	Use:   "db-init",
	Short: "initialize the keyspace from a schema file",
	Long:  `create the application keyspace by running the statement in the given schema file against the configured store`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createKeyspace()
	},
}
var schemaFile string

func init() {
	databaseCmd.Flags().StringVar(&schemaFile, "schemaFile", "", "schema file holding the keyspace definition")
	RootCmd.AddCommand(databaseCmd)
}

func createKeyspace() error {
	if len(schemaFile) == 0 {
		return errors.New("schema file is empty")
	}
	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("unable to read schema file %v", err)
	}

	// the keyspace may not exist yet, connect via the system keyspace
	dbConfig := app.AppConfig.PersistentStore
	dbConfig.Keyspace = "system"
	template, err := store.NewTemplateFactory(app.Logger).CreateTemplate(dbConfig, app.Logger)
	if err != nil {
		return fmt.Errorf("unable to connect to database %v", err)
	}
	defer template.Close()

	if _, err := template.Execute(context.Background(), string(data)); err != nil {
		return fmt.Errorf("unable to create database keyspace %v", err)
	}
	app.Logger.Info("database keyspace created")
	return nil
}
