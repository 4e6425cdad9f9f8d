package cli

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-cards/internal/app"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the root command for the taskcards binary.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "taskcards",
		Short:         "Task cards - a browser task list",
		Long:          "A browser task list backed by a REST task store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "extra .env file to load")

	cmd.AddCommand(NewWebCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// bootstrap reads the configuration and sets up logging for a command.
func bootstrap(opts *RootOptions) {
	app.InitDefaultLogger()
	app.MustLoadEnvFile(opts.EnvFile)
	app.MustReadEnv()
	app.MustInitApplicationLogger()
}

func NewWebCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the task list page",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bootstrap(opts)
			app.MustListenAndServeWeb()
		},
	}
}

func NewStoreCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Serve the REST task store",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bootstrap(opts)
			app.MustListenAndServeStore()
		},
	}
}

func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load tasks from a YAML file into the store",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			bootstrap(opts)
			app.MustSeedStore(args[0])
		},
	}
}
