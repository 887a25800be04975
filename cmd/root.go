package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"droidcam-cli/internal/client"
	"droidcam-cli/internal/config"
)

var (
	cfgFile    string
	jsonOutput bool
	address    string
	port       int
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "droidcam-cli",
	Short: "A CLI for controlling a DroidCam phone camera over its REST API",
	Long: `Read battery, camera and exposure state from a phone running the
DroidCam app, and change zoom, flash, exposure, white balance and focus.

The device address comes from --address, the ADDRESS environment variable
or the config file written by 'droidcam-cli connect'.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.droidcam-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "Device address (default $ADDRESS or config file)")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "Device port (default $PORT, config file or 4747)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "HTTP request timeout")
}

// setupClient builds a device client from flags and configured defaults,
// exiting when no address can be resolved.
func setupClient() *client.DeviceClient {
	cfg := config.ClientConfig(address, port)
	cfg.Timeout = timeout

	api, err := client.New(cfg)
	if err != nil {
		fmt.Printf("Error: %v. Pass --address or run 'droidcam-cli connect' first.\n", err)
		os.Exit(1)
	}
	return api
}

// mustSucceed reports the outcome of a mutating command. The client only
// tells us success or failure; the reason is in its log output.
func mustSucceed(ok bool, what string) {
	if !ok {
		fmt.Printf("Failed to %s.\n", what)
		os.Exit(1)
	}
	fmt.Println("Success.")
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
