package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ochronus/goopenload/internal/app"
	"github.com/ochronus/goopenload/internal/config"
	"github.com/ochronus/goopenload/internal/utils"
	"github.com/ochronus/goopenload/openload"
	"github.com/spf13/cobra"
)

// cli holds the state shared by all commands.
type cli struct {
	configPath    string
	out           io.Writer
	containerOpts []app.Option
}

type clientFunc func(ctx context.Context, client openload.ClientAPI, args []string) (any, error)

func newRootCmd(out io.Writer, containerOpts ...app.Option) *cobra.Command {
	c := &cli{out: out, containerOpts: containerOpts}

	defaultConfigPath, err := config.DefaultConfigPath()
	if err != nil {
		defaultConfigPath = "./config.toml"
	}

	rootCmd := &cobra.Command{
		Use:           "goopenload",
		Short:         "openload API client",
		Long:          "Command line client for the openload file hosting API. Every command prints the decoded result as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", defaultConfigPath, "Path to config file")

	rootCmd.AddCommand(
		c.accountCmd(),
		c.ticketCmd(),
		c.linkCmd(),
		c.infoCmd(),
		c.uploadLinkCmd(),
		c.uploadCmd(),
		c.remoteUploadCmd(),
		c.remoteStatusCmd(),
		c.lsCmd(),
		c.convertCmd(),
		c.convertsCmd(),
		c.failedConvertsCmd(),
		c.splashCmd(),
		c.generateConfigCmd(),
		c.versionCmd(),
	)

	return rootCmd
}

// run loads the configuration, builds the client and prints what fn returns.
func (c *cli) run(fn clientFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.Load(c.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		container, err := app.NewContainer(ctx, cfg, c.containerOpts...)
		if err != nil {
			return fmt.Errorf("failed to build container: %w", err)
		}

		container.Logger.Debugf("Running %s", cmd.Name())

		result, err := fn(ctx, container.Client, args)
		if err != nil {
			return err
		}
		return utils.PrintJSON(c.out, result)
	}
}

func (c *cli) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account information",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, _ []string) (any, error) {
			return client.AccountInfo(ctx)
		}),
	}
}

func (c *cli) ticketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticket <file>",
		Short: "Prepare a download ticket",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.PrepareDownload(ctx, args[0])
		}),
	}
}

func (c *cli) linkCmd() *cobra.Command {
	var captcha string
	cmd := &cobra.Command{
		Use:   "link <file> <ticket>",
		Short: "Get a download link for a prepared ticket",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.GetDownloadLink(ctx, args[0], args[1], captcha)
		}),
	}
	cmd.Flags().StringVar(&captcha, "captcha", "", "Solved captcha, if the ticket asked for one")
	return cmd
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show file information",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.FileInfo(ctx, args[0])
		}),
	}
}

func addUploadFlags(cmd *cobra.Command, opts *openload.UploadOptions) {
	cmd.Flags().StringVar(&opts.FolderID, "folder", "", "Destination folder id")
	cmd.Flags().StringVar(&opts.SHA1, "sha1", "", "Expected SHA1 of the file")
	cmd.Flags().BoolVar(&opts.HTTPOnly, "http-only", false, "Only use http upload links")
}

func (c *cli) uploadLinkCmd() *cobra.Command {
	var opts openload.UploadOptions
	cmd := &cobra.Command{
		Use:   "upload-link",
		Short: "Request an upload link",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, _ []string) (any, error) {
			return client.UploadLink(ctx, opts)
		}),
	}
	addUploadFlags(cmd, &opts)
	return cmd
}

func (c *cli) uploadCmd() *cobra.Command {
	var opts openload.UploadOptions
	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.UploadFile(ctx, args[0], opts)
		}),
	}
	addUploadFlags(cmd, &opts)
	return cmd
}

func (c *cli) remoteUploadCmd() *cobra.Command {
	var opts openload.RemoteUploadOptions
	cmd := &cobra.Command{
		Use:   "remote-upload <url>",
		Short: "Ask openload to fetch a remote file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.RemoteUpload(ctx, args[0], opts)
		}),
	}
	cmd.Flags().StringVar(&opts.FolderID, "folder", "", "Destination folder id")
	cmd.Flags().StringVar(&opts.Headers, "headers", "", "Extra headers for the remote fetch, newline separated")
	return cmd
}

func (c *cli) remoteStatusCmd() *cobra.Command {
	var opts openload.RemoteUploadStatusOptions
	cmd := &cobra.Command{
		Use:   "remote-status",
		Short: "Show remote upload jobs",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, _ []string) (any, error) {
			return client.RemoteUploadStatus(ctx, opts)
		}),
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of jobs, 0 for the service default")
	cmd.Flags().StringVar(&opts.ID, "id", "", "Only show this job")
	return cmd
}

func (c *cli) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder]",
		Short: "List a folder, the root folder by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.ListFolder(ctx, optionalArg(args))
		}),
	}
}

func (c *cli) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Start converting a file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.ConvertFile(ctx, args[0])
		}),
	}
}

func (c *cli) convertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "converts [folder]",
		Short: "Show running conversions",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.RunningConversions(ctx, optionalArg(args))
		}),
	}
}

func (c *cli) failedConvertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "failed-converts",
		Short: "Show failed conversions",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, _ []string) (any, error) {
			return client.FailedConversions(ctx)
		}),
	}
}

func (c *cli) splashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splash <file>",
		Short: "Show the splash image URL of a video",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, client openload.ClientAPI, args []string) (any, error) {
			return client.SplashImage(ctx, args[0])
		}),
	}
}

func (c *cli) generateConfigCmd() *cobra.Command {
	var login, key string
	cmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Generate config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.GenerateConfig(c.out, c.configPath, login, key)
		},
	}
	cmd.Flags().StringVar(&login, "login", "", "API login")
	cmd.Flags().StringVar(&key, "key", "", "API key")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "goopenload version %s\n", version)
		},
	}
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
