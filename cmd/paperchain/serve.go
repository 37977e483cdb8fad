package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bobinette/paperchain/gin"
)

func init() {
	inheritPersistentPreRun(&ServeCommand)
	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Start the registry HTTP server",
	Long:  "Start the registry HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()

		services := openServices(config)
		defer services.close()

		handler, err := gin.New(services.registry, services.events)
		if err != nil {
			logger.Fatal("could not create server:", err)
		}

		logger.Info("listening on", config.Addr)
		if err := http.ListenAndServe(config.Addr, handler); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
