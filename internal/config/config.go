package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"droidcam-cli/internal/client"
)

const (
	KeyAddress = "address"
	KeyPort    = "port"

	fileName = ".droidcam-cli"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".droidcam-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(fileName)
	}

	// ADDRESS and PORT from the environment act as device defaults.
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// Defaults returns the fallback device address and port from the
// environment or the config file. Zero values mean "not configured".
func Defaults() (address string, port int) {
	return viper.GetString(KeyAddress), viper.GetInt(KeyPort)
}

// ClientConfig merges explicit values (usually flags) with the configured
// defaults. New still decides which one wins.
func ClientConfig(address string, port int) client.ClientConfig {
	defAddr, defPort := Defaults()
	return client.ClientConfig{
		Address:        address,
		Port:           port,
		DefaultAddress: defAddr,
		DefaultPort:    defPort,
	}
}

// SaveDevice persists the device address so later commands can omit it.
func SaveDevice(address string, port int) error {
	viper.Set(KeyAddress, address)
	viper.Set(KeyPort, port)

	if err := viper.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		return viper.WriteConfigAs(filepath.Join(home, fileName+".yaml"))
	}
	return nil
}
