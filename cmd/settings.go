package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"droidcam-cli/internal/client"
)

var flashCmd = &cobra.Command{
	Use:     "flash on|off",
	Short:   "Turn the LED flash on or off",
	Example: `  droidcam-cli flash on`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		on := parseSwitch(args[0])
		api := setupClient()

		fmt.Printf("Turning flash %s ...\n", onOff(on))
		mustSucceed(api.SetFlash(commandContext(cmd), on), "set flash")
	},
}

var exposureLockCmd = &cobra.Command{
	Use:     "exposure-lock on|off",
	Short:   "Lock or unlock auto exposure",
	Example: `  droidcam-cli exposure-lock off`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		on := parseSwitch(args[0])
		api := setupClient()

		fmt.Printf("Turning exposure lock %s ...\n", onOff(on))
		mustSucceed(api.SetExposureLock(commandContext(cmd), on), "set exposure lock")
	},
}

var zoomCmd = &cobra.Command{
	Use:     "zoom LEVEL",
	Short:   "Set the zoom level (up to the device's maxZoom)",
	Example: `  droidcam-cli zoom 2.5`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level := parseLevel(args[0])
		api := setupClient()

		fmt.Printf("Setting zoom to %g ...\n", level)
		mustSucceed(api.SetZoom(commandContext(cmd), level), "set zoom")
	},
}

var evCmd = &cobra.Command{
	Use:     "ev LEVEL",
	Short:   "Set the exposure value (up to the device's maxExposure)",
	Example: `  droidcam-cli ev -- -1`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level := parseLevel(args[0])
		api := setupClient()

		fmt.Printf("Setting exposure value to %g ...\n", level)
		mustSucceed(api.SetExposureValue(commandContext(cmd), level), "set exposure value")
	},
}

var wbCmd = &cobra.Command{
	Use:     "wb MODE",
	Short:   "Set the white balance mode",
	Example: `  droidcam-cli wb "Cloudy Daylight"`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Setting white balance to %q ...\n", args[0])
		mustSucceed(api.SetWhiteBalance(commandContext(cmd), args[0]), "set white balance")
	},
}

var autofocusCmd = &cobra.Command{
	Use:     "autofocus MODE",
	Short:   "Set the autofocus mode",
	Example: `  droidcam-cli autofocus Continuous`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Setting autofocus to %q ...\n", args[0])
		mustSucceed(api.SetAutoFocus(commandContext(cmd), args[0]), "set autofocus")
	},
}

// modesCmd lists the names accepted by wb and autofocus. It needs no device.
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List white balance and autofocus modes",
	Run: func(cmd *cobra.Command, args []string) {
		wb := client.WhiteBalanceModes()
		af := client.AutoFocusModes()

		if jsonOutput {
			printJSON(map[string]map[string]int{
				"white_balance": wb,
				"autofocus":     af,
			})
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SETTING\tCODE\tNAME")
		fmt.Fprintln(w, "-------\t----\t----")
		for _, name := range client.ModeNames(wb) {
			fmt.Fprintf(w, "wb\t%d\t%s\n", wb[name], name)
		}
		for _, name := range client.ModeNames(af) {
			fmt.Fprintf(w, "autofocus\t%d\t%s\n", af[name], name)
		}
		w.Flush()
	},
}

func parseSwitch(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}
	fmt.Printf("Error: expected on or off, got %q\n", s)
	os.Exit(1)
	return false
}

func parseLevel(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("Error: %q is not a number\n", s)
		os.Exit(1)
	}
	return v
}

func init() {
	rootCmd.AddCommand(flashCmd)
	rootCmd.AddCommand(exposureLockCmd)
	rootCmd.AddCommand(zoomCmd)
	rootCmd.AddCommand(evCmd)
	rootCmd.AddCommand(wbCmd)
	rootCmd.AddCommand(autofocusCmd)
	rootCmd.AddCommand(modesCmd)
}
