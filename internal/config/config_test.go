package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"droidcam-cli/internal/client"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaultsFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("ADDRESS", "192.168.1.44")
	t.Setenv("PORT", "1212")

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	addr, port := Defaults()
	if addr != "192.168.1.44" || port != 1212 {
		t.Errorf("expected 192.168.1.44:1212, got %s:%d", addr, port)
	}
}

func TestDefaultsUnset(t *testing.T) {
	resetViper(t)
	t.Setenv("ADDRESS", "")
	t.Setenv("PORT", "not-a-port")

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	addr, port := Defaults()
	if addr != "" || port != 0 {
		t.Errorf("expected no defaults, got %q:%d", addr, port)
	}

	_, err := client.New(ClientConfig("", 0))
	if !errors.Is(err, client.ErrNoAddress) {
		t.Errorf("expected ErrNoAddress, got %v", err)
	}
}

func TestClientConfigPrefersExplicitValues(t *testing.T) {
	resetViper(t)
	t.Setenv("ADDRESS", "10.0.0.1")
	t.Setenv("PORT", "")

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	c, err := client.New(ClientConfig("10.0.0.9", 0))
	if err != nil {
		t.Fatal(err)
	}
	if want := "http://10.0.0.9:4747/v1"; c.URL() != want {
		t.Errorf("expected %s, got %s", want, c.URL())
	}

	c, err = client.New(ClientConfig("", 0))
	if err != nil {
		t.Fatal(err)
	}
	if want := "http://10.0.0.1:4747/v1"; c.URL() != want {
		t.Errorf("expected %s, got %s", want, c.URL())
	}
}

func TestSaveDeviceRoundTrip(t *testing.T) {
	resetViper(t)
	t.Setenv("ADDRESS", "")
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "droidcam.yaml")

	InitConfig(path)
	if err := SaveDevice("192.168.1.50", 4848); err != nil {
		t.Fatal(err)
	}

	viper.Reset()
	InitConfig(path)

	addr, port := Defaults()
	if addr != "192.168.1.50" || port != 4848 {
		t.Errorf("expected saved device 192.168.1.50:4848, got %s:%d", addr, port)
	}
}
