package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Parent Command
var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Manage the phone's cameras",
	Long:  `List the cameras the phone exposes or switch the active one.`,
}

// List Command
var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cameras",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		cameras, err := api.GetCameraList(commandContext(cmd))
		if err != nil {
			fmt.Printf("Error fetching cameras: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(cameras)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "INDEX\tNAME")
		fmt.Fprintln(w, "-----\t----")
		for i, name := range cameras {
			fmt.Fprintf(w, "%d\t%s\n", i, name)
		}
		w.Flush()
	},
}

// Set Command
var camerasSetCmd = &cobra.Command{
	Use:     "set NAME",
	Short:   "Activate a camera by name",
	Example: `  droidcam-cli cameras set "Back Camera"`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Switching to camera %q ...\n", args[0])
		mustSucceed(api.SetCamera(commandContext(cmd), args[0]), "switch camera")
	},
}

func init() {
	rootCmd.AddCommand(camerasCmd)

	camerasCmd.AddCommand(camerasListCmd)
	camerasCmd.AddCommand(camerasSetCmd)
}
