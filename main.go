package main

import "droidcam-cli/cmd"

func main() {
	cmd.Execute()
}
