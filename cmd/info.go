package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"droidcam-cli/internal/client"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current camera state",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		info, err := api.GetInfo(commandContext(cmd))
		if err != nil {
			fmt.Printf("Error fetching info: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(info)
			return
		}

		wb, ok := client.ModeName(client.WhiteBalanceModes(), info.WBMode)
		if !ok {
			wb = strconv.Itoa(info.WBMode)
		}
		focus, ok := client.ModeName(client.AutoFocusModes(), info.FocusMode)
		if !ok {
			focus = strconv.Itoa(info.FocusMode)
		}
		led := "n/a"
		if info.LEDAvailable {
			led = onOff(info.FlashEnabled())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "ACTIVE CAMERA\t%d\n", info.Active)
		fmt.Fprintf(w, "ZOOM\t%g / %g\n", info.CurrZoom, info.MaxZoom)
		fmt.Fprintf(w, "EXPOSURE\t%g / %g\n", info.CurrExposure, info.MaxExposure)
		fmt.Fprintf(w, "EXPOSURE LOCK\t%s\n", onOff(info.ExposureLocked()))
		fmt.Fprintf(w, "WHITE BALANCE\t%s\n", wb)
		fmt.Fprintf(w, "AUTOFOCUS\t%s\n", focus)
		fmt.Fprintf(w, "FLASH\t%s\n", led)
		fmt.Fprintf(w, "SOUND MUTED\t%t\n", info.Muted())
		w.Flush()
	},
}

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Show the phone battery level",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		level, err := api.GetBatteryLevel(commandContext(cmd))
		if err != nil {
			fmt.Printf("Error fetching battery level: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			// NaN can't be encoded as a JSON number.
			printJSON(map[string]string{"battery_level": strconv.FormatFloat(level, 'f', -1, 64)})
			return
		}
		fmt.Printf("%g%%\n", level)
	},
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Show the phone name",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		name, err := api.GetName(commandContext(cmd))
		if err != nil {
			fmt.Printf("Error fetching name: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(map[string]string{"name": name})
			return
		}
		fmt.Println(name)
	},
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(batteryCmd)
	rootCmd.AddCommand(nameCmd)
}
