package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/helmet/internal/logging"
	"github.com/heathj/helmet/pagefile"
	"github.com/heathj/helmet/preview"
	"github.com/heathj/helmet/publish"
)

func newRootCmd() *cobra.Command {
	var verbosity int
	root := &cobra.Command{
		Use:           "markup",
		Short:         "Build HTML pages from YAML or TOML page files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
	root.AddCommand(renderCmd(), serveCmd(), publishCmd())
	return root
}

func renderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a page file to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := pagefile.Render(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write([]byte(out))
				return err
			}
			return errors.Wrap(os.WriteFile(output, []byte(out), 0o644), "failed to write output")
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to this file instead of stdout")
	return cmd
}

func serveCmd() *cobra.Command {
	var dir, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve page files from a directory as rendered HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return preview.New(preview.WithDir(dir), preview.WithAddr(addr)).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding page files")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func publishCmd() *cobra.Command {
	var dir, bucket, prefix, region string
	cmd := &cobra.Command{
		Use:   "publish FILE",
		Short: "Render a page file and store it in a directory or S3 bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sink publish.Sink
			switch {
			case dir != "" && bucket != "":
				return errors.New("--dir and --bucket are mutually exclusive")
			case dir != "":
				sink = publish.NewDirSink(dir)
			case bucket != "":
				sink = publish.NewS3Sink(publish.NewS3Client(region), bucket, prefix)
			default:
				return errors.New("one of --dir or --bucket is required")
			}

			key, err := publish.File(cmd.Context(), sink, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default $AWS_REGION)")
	return cmd
}
