package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"droidcam-cli/internal/config"
)

// connectCmd checks that a device answers and remembers its address.
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Verify a device and save its address",
	Long: `Queries the phone name at the given address and, if the device answers,
saves the address and port locally for future commands.

Example:
  droidcam-cli connect --address 192.168.1.44 --port 4747`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Contacting %s ...\n", api.URL())

		name, err := api.GetName(commandContext(cmd))
		if err != nil {
			log.Fatalf("Fatal: device did not answer: %v", err)
		}

		fmt.Printf("Found %q. Saving configuration...\n", name)

		if err := config.SaveDevice(api.Address(), api.Port()); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Device saved. You can now run commands like 'droidcam-cli info'.")
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
