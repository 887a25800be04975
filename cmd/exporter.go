package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"droidcam-cli/internal/client"
)

var (
	expListen     string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.DeviceClient
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	name, err := p.api.GetName(ctx)
	cancel()
	if err != nil {
		// Keep serving; droidcam_up reports the device as down until it answers.
		log.Printf("Device at %s not reachable yet: %v", p.api.URL(), err)
	} else {
		log.Printf("Exporting metrics for %q at %s", name, p.api.URL())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(&DeviceCollector{Client: p.api})

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	p.server = &http.Server{
		Addr:    expListen,
		Handler: mux,
	}

	log.Printf("DroidCam exporter listening on %s", expListen)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR ---

// DeviceCollector takes one snapshot and one battery reading per scrape.
type DeviceCollector struct {
	Client *client.DeviceClient
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"droidcam_up", "Was the last snapshot read successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"droidcam_scrape_duration_seconds", "Time taken to scrape the device.", nil, nil,
	)
	batteryDesc = prometheus.NewDesc(
		"droidcam_battery_level", "Phone battery level in percent.", nil, nil,
	)
	zoomDesc = prometheus.NewDesc(
		"droidcam_zoom_level", "Zoom level.", []string{"bound"}, nil,
	)
	exposureDesc = prometheus.NewDesc(
		"droidcam_exposure_value", "Exposure value.", []string{"bound"}, nil,
	)
	exposureLockedDesc = prometheus.NewDesc(
		"droidcam_exposure_locked", "Auto exposure lock (1=locked).", nil, nil,
	)
	ledAvailableDesc = prometheus.NewDesc(
		"droidcam_led_available", "Device has an LED flash.", nil, nil,
	)
	ledEnabledDesc = prometheus.NewDesc(
		"droidcam_led_enabled", "LED flash is lit.", nil, nil,
	)
	activeCameraDesc = prometheus.NewDesc(
		"droidcam_active_camera", "Index of the active camera.", nil, nil,
	)
	whiteBalanceDesc = prometheus.NewDesc(
		"droidcam_white_balance_mode", "White balance mode code.", []string{"mode"}, nil,
	)
	focusModeDesc = prometheus.NewDesc(
		"droidcam_focus_mode", "Autofocus mode code.", []string{"mode"}, nil,
	)
	mutedDesc = prometheus.NewDesc(
		"droidcam_sound_muted", "Shutter sound muted.", nil, nil,
	)
)

func (c *DeviceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- batteryDesc
	ch <- zoomDesc
	ch <- exposureDesc
	ch <- exposureLockedDesc
	ch <- ledAvailableDesc
	ch <- ledEnabledDesc
	ch <- activeCameraDesc
	ch <- whiteBalanceDesc
	ch <- focusModeDesc
	ch <- mutedDesc
}

func (c *DeviceCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	ctx := context.Background()
	success := 1.0

	// 1. Battery
	if level, err := c.Client.GetBatteryLevel(ctx); err == nil && !math.IsNaN(level) {
		ch <- prometheus.MustNewConstMetric(batteryDesc, prometheus.GaugeValue, level)
	} else if err != nil {
		log.Printf("Error scraping battery level: %v", err)
	}

	// 2. Snapshot
	if info, err := c.Client.GetInfo(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(zoomDesc, prometheus.GaugeValue, info.CurrZoom, "current")
		ch <- prometheus.MustNewConstMetric(zoomDesc, prometheus.GaugeValue, info.MaxZoom, "max")
		ch <- prometheus.MustNewConstMetric(exposureDesc, prometheus.GaugeValue, info.CurrExposure, "current")
		ch <- prometheus.MustNewConstMetric(exposureDesc, prometheus.GaugeValue, info.MaxExposure, "max")
		ch <- prometheus.MustNewConstMetric(exposureLockedDesc, prometheus.GaugeValue, gauge(info.ExposureLocked()))
		ch <- prometheus.MustNewConstMetric(ledAvailableDesc, prometheus.GaugeValue, gauge(info.LEDAvailable))
		ch <- prometheus.MustNewConstMetric(ledEnabledDesc, prometheus.GaugeValue, gauge(info.FlashEnabled()))
		ch <- prometheus.MustNewConstMetric(activeCameraDesc, prometheus.GaugeValue, float64(info.Active))
		ch <- prometheus.MustNewConstMetric(whiteBalanceDesc, prometheus.GaugeValue, float64(info.WBMode),
			modeLabel(client.WhiteBalanceModes(), info.WBMode))
		ch <- prometheus.MustNewConstMetric(focusModeDesc, prometheus.GaugeValue, float64(info.FocusMode),
			modeLabel(client.AutoFocusModes(), info.FocusMode))
		ch <- prometheus.MustNewConstMetric(mutedDesc, prometheus.GaugeValue, gauge(info.Muted()))
	} else {
		success = 0.0
		log.Printf("Error scraping device info: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

func gauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func modeLabel(modes map[string]int, code int) string {
	if name, ok := client.ModeName(modes, code); ok {
		return name
	}
	return strconv.Itoa(code)
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes device metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		svcConfig := &service.Config{
			Name:        "droidcam-exporter",
			DisplayName: "DroidCam Prometheus Exporter",
			Description: "Exposes DroidCam device metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--address", api.Address(),
				"--port", strconv.Itoa(api.Port()),
				"--listen", expListen,
			},
		}

		prg := &program{api: api}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		if serviceAction != "" {
			if err := service.Control(s, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Runs until the service manager (or Ctrl-C) stops us.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expListen, "listen", ":9747", "Address to serve /metrics on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
