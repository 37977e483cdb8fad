package main

import (
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bobinette/paperchain/bolt"
	"github.com/bobinette/paperchain/log"
	"github.com/bobinette/paperchain/registry"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger
)

type Config struct {
	Addr string `toml:"addr"`
	Bolt struct {
		Store  string `toml:"store"`
		Ledger string `toml:"ledger"`
	} `toml:"bolt"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "paperchain",
	Short: "Bind research paper hashes to their creators with Paperchain",
	Long:  "Bind research paper hashes to their creators with Paperchain",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}
	},
}

func inheritPersistentPreRun(cmd *cobra.Command) {
	preRun := cmd.PersistentPreRun
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if parent := cmd.Parent(); parent != nil && parent.PersistentPreRun != nil {
			parent.PersistentPreRun(parent, args)
		}
		if preRun != nil {
			preRun(cmd, args)
		}
	}
}

func loadConfig() Config {
	config := Config{Addr: ":8081"}
	config.Bolt.Store = "data/paperchain.db"
	config.Bolt.Ledger = "data/ledger.db"

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return config
		}
		logger.Fatal("could not read configuration file:", err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		logger.Fatal("error unmarshalling configuration:", err)
	}

	return config
}

type services struct {
	registry *registry.Service
	ledger   *bolt.Ledger
	events   *bolt.EventLog
	close    func()
}

func openServices(config Config) *services {
	driver := &bolt.Driver{}
	if err := driver.Open(config.Bolt.Store); err != nil {
		logger.Fatal("could not open store:", err)
	}

	ledger := &bolt.Ledger{}
	if err := ledger.Open(config.Bolt.Ledger); err != nil {
		driver.Close()
		logger.Fatal("could not open ledger:", err)
	}

	events := &bolt.EventLog{Driver: driver}
	service := registry.NewService(&bolt.RegistryStore{Driver: driver}, ledger, events)

	return &services{
		registry: service,
		ledger:   ledger,
		events:   events,
		close: func() {
			ledger.Close()
			driver.Close()
		},
	}
}
