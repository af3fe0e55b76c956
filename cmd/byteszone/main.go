// Command byteszone builds and previews the site.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	byteszone "github.com/lukewestby/bytes.zone"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "byteszone",
		Short:         "Static site generator for bytes.zone",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(buildCmd(), serveCmd(), versionCmd())
	return root
}

func buildCmd() *cobra.Command {
	var cfg byteszone.SiteConfig
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := byteszone.New(cfg)
			if err := site.Build(); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Name, "name", "", "site name")
	cmd.Flags().StringVar(&cfg.URL, "url", "", "canonical site URL")
	cmd.Flags().StringVar(&cfg.Tagline, "tagline", "", "fallback meta description")
	cmd.Flags().StringVar(&cfg.Author, "author", "", "author name for JSON-LD")
	cmd.Flags().StringVar(&cfg.ContentDir, "content", "content", "markdown source directory")
	cmd.Flags().StringVar(&cfg.StaticDir, "static", "static", "static asset directory")
	cmd.Flags().StringVar(&cfg.OutputDir, "out", "public", "build output directory")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		dir  string
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a built site locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("serving %s on %s", dir, addr)
			return byteszone.Serve(dir, addr)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "public", "built site directory")
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the byteszone version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("byteszone %s\n", version)
		},
	}
}
