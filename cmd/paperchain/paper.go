package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobinette/paperchain"
)

var (
	callerFlag      string
	heightFlag      uint64
	titleFlag       string
	descriptionFlag string
	goalFlag        uint64
)

func init() {
	RegisterCommand.Flags().StringVar(&callerFlag, "caller", "", "caller identity")
	RegisterCommand.Flags().Uint64Var(&heightFlag, "height", 0, "current height")
	RegisterCommand.Flags().StringVar(&titleFlag, "title", "", "paper title")
	RegisterCommand.Flags().StringVar(&descriptionFlag, "description", "", "paper description")
	RegisterCommand.Flags().Uint64Var(&goalFlag, "goal", 0, "funding goal")

	PaperCommand.AddCommand(&RegisterCommand)
	PaperCommand.AddCommand(&ShowCommand)

	inheritPersistentPreRun(&PaperCommand)
	inheritPersistentPreRun(&RegisterCommand)
	inheritPersistentPreRun(&ShowCommand)

	RootCmd.AddCommand(&PaperCommand)
}

var PaperCommand = cobra.Command{
	Use:   "paper",
	Short: "Register and inspect papers",
	Long:  "Register and inspect papers",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var RegisterCommand = cobra.Command{
	Use:   "register <hash>",
	Short: "Register a paper hash",
	Long:  "Register a paper hash",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("expected exactly one argument: the paper hash")
		}

		hash, err := paperchain.ParseHash(args[0])
		if err != nil {
			logger.Fatal("invalid hash:", err)
		}

		services := openServices(loadConfig())
		defer services.close()

		id, err := services.registry.Register(
			paperchain.Principal(callerFlag),
			heightFlag,
			hash,
			titleFlag,
			descriptionFlag,
			goalFlag,
		)
		if err != nil {
			logger.Fatal("could not register:", err)
		}

		logger.Info("registered paper", hash.String(), "with id", id)
	},
}

var ShowCommand = cobra.Command{
	Use:   "show <hash>",
	Short: "Show the registered record for a hash",
	Long:  "Show the registered record for a hash",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("expected exactly one argument: the paper hash")
		}

		hash, err := paperchain.ParseHash(args[0])
		if err != nil {
			logger.Fatal("invalid hash:", err)
		}

		services := openServices(loadConfig())
		defer services.close()

		paper, err := services.registry.Get(hash)
		if err != nil {
			logger.Fatal("could not get paper:", err)
		} else if paper == nil {
			logger.Fatal("no paper for hash ", hash.String())
		}

		id, _, err := services.registry.ID(hash)
		if err != nil {
			logger.Fatal("could not get paper id:", err)
		}

		out := struct {
			ID uint64 `json:"id"`
			*paperchain.Paper
		}{id, paper}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			logger.Fatal("could not encode paper:", err)
		}
	},
}
