package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/addrsplit/internal/config"
	"github.com/addrsplit/internal/debug"
	"github.com/addrsplit/internal/logging"
	"github.com/addrsplit/internal/split"
	"github.com/addrsplit/internal/web"
	"github.com/addrsplit/internal/web/handlers"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "addrsplit",
		Short:   "Address Line Splitter",
		Long:    `Splits free-form postal addresses into three lines of roughly equal length for fixed-width address forms`,
		Version: "0.1.0",
	}

	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createSplitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createServeCmd creates the HTTP service command
func createServeCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the address splitting HTTP service",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				zlog.Fatal().Err(err).Msg("invalid configuration")
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				zlog.Fatal().Err(err).Msg("invalid configuration")
			}

			logger := logging.New("addrsplit", cfg.Log.Level, cfg.Log.Format)
			zlog.Logger = logger

			logger.Info().
				Str("addr", cfg.Addr()).
				Bool("metrics", cfg.Features.Metrics).
				Bool("cors", cfg.Features.CORS).
				Msg("configuration loaded")

			if err := web.NewServer(cfg, logger).Start(); err != nil {
				logger.Fatal().Err(err).Msg("server failed")
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "bind address (overrides WEB_HOST)")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port (overrides WEB_PORT)")

	return cmd
}

// createSplitCmd creates the one-shot splitting command
func createSplitCmd() *cobra.Command {
	var asJSON bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "split [address ...]",
		Short: "Split addresses from arguments or stdin",
		Long:  `Splits each address into three lines. With no arguments, addresses are read from stdin, one per line`,
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			}

			addresses := args
			if len(addresses) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					addresses = append(addresses, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					zlog.Fatal().Err(err).Msg("reading stdin")
				}
			}

			for _, address := range addresses {
				printSplit(address, asJSON, verbose)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each distribution step")

	return cmd
}

// printSplit distributes one address and writes the result to stdout
func printSplit(address string, asJSON, verbose bool) {
	defer debug.DebugTiming(verbose, "distribute")()

	lines := split.DistributeTrace(verbose, address)

	if asJSON {
		out, _ := json.Marshal(handlers.SplitResponse{
			AddressLine1:    lines.Line1,
			AddressLine2:    lines.Line2,
			AddressLine3:    lines.Line3,
			OriginalAddress: address,
		})
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Original: %s\n", address)
	fmt.Printf("Line 1: %s\n", lines.Line1)
	fmt.Printf("Line 2: %s\n", lines.Line2)
	fmt.Printf("Line 3: %s\n", lines.Line3)
	fmt.Println(strings.Repeat("-", 50))
}
