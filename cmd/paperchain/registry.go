package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bobinette/paperchain"
)

func init() {
	RegistryCommand.AddCommand(&AuthorityCommand)
	RegistryCommand.AddCommand(&FeeCommand)
	RegistryCommand.AddCommand(&CreditCommand)
	RegistryCommand.AddCommand(&EventsCommand)

	inheritPersistentPreRun(&RegistryCommand)
	inheritPersistentPreRun(&AuthorityCommand)
	inheritPersistentPreRun(&FeeCommand)
	inheritPersistentPreRun(&CreditCommand)
	inheritPersistentPreRun(&EventsCommand)

	RootCmd.AddCommand(&RegistryCommand)
}

var RegistryCommand = cobra.Command{
	Use:   "registry",
	Short: "Configure and inspect the registry",
	Long:  "Configure and inspect the registry",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var AuthorityCommand = cobra.Command{
	Use:   "authority <principal>",
	Short: "Bind the fee-receiving authority (one-shot)",
	Long:  "Bind the fee-receiving authority (one-shot)",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("expected exactly one argument: the authority principal")
		}

		services := openServices(loadConfig())
		defer services.close()

		if err := services.registry.SetAuthority(paperchain.Principal(args[0])); err != nil {
			logger.Fatal("could not set authority:", err)
		}

		logger.Info("authority set to", args[0])
	},
}

var FeeCommand = cobra.Command{
	Use:   "fee [amount]",
	Short: "Show or set the registration fee",
	Long:  "Show or set the registration fee",
	Run: func(cmd *cobra.Command, args []string) {
		services := openServices(loadConfig())
		defer services.close()

		if len(args) == 0 {
			fee, err := services.registry.RegistrationFee()
			if err != nil {
				logger.Fatal("could not get fee:", err)
			}
			logger.Info("registration fee:", fee)
			return
		}

		fee, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			logger.Fatal("invalid fee:", err)
		}

		if err := services.registry.SetRegistrationFee(fee); err != nil {
			logger.Fatal("could not set fee:", err)
		}

		logger.Info("registration fee set to", fee)
	},
}

var CreditCommand = cobra.Command{
	Use:   "credit <principal> <amount>",
	Short: "Seed a ledger account",
	Long:  "Seed a ledger account",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			logger.Fatal("expected two arguments: principal and amount")
		}

		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			logger.Fatal("invalid amount:", err)
		}

		services := openServices(loadConfig())
		defer services.close()

		if err := services.ledger.Credit(paperchain.Principal(args[0]), amount); err != nil {
			logger.Fatal("could not credit account:", err)
		}

		balance, err := services.ledger.Balance(paperchain.Principal(args[0]))
		if err != nil {
			logger.Fatal("could not get balance:", err)
		}

		logger.Info(args[0], "balance:", balance)
	},
}

var EventsCommand = cobra.Command{
	Use:   "events",
	Short: "List emitted registry events",
	Long:  "List emitted registry events",
	Run: func(cmd *cobra.Command, args []string) {
		services := openServices(loadConfig())
		defer services.close()

		events, err := services.events.List()
		if err != nil {
			logger.Fatal("could not list events:", err)
		}

		for _, event := range events {
			if event.ID != 0 {
				logger.Print(event.Kind, event.Hash.String(), "id", event.ID)
			} else {
				logger.Print(event.Kind, event.Hash.String())
			}
		}
	},
}
