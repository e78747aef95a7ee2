package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/controller"
	"github.com/svanherk/casefan/internal/fans"
	"github.com/svanherk/casefan/internal/sensors"
	"github.com/svanherk/casefan/internal/statistics"
	"github.com/svanherk/casefan/internal/ui"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	if os.Geteuid() != 0 {
		ui.Warning("casefan is not running as root, accessing the fan controller will likely fail")
	}

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %v", err)
	}
	// pre-flight read: a missing or unreadable sensor path will not heal on
	// the timescale of a tick, so it is a startup failure
	if _, err := sensor.GetValue(); err != nil {
		ui.Fatal("Unable to read sensor %s: %v", sensor.GetId(), err)
	}

	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		ui.Fatal("Unable to initialize fan %s: %v", config.Fan.ID, err)
	}
	fanController := controller.NewFanController(sensor, fan, config.UpdatePeriod)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			collector := statistics.NewControllerCollector(fanController, fan.GetId())
			statistics.Register(collector)

			addr := fmt.Sprintf(":%d", config.Statistics.Port)
			server := &http.Server{Addr: addr, Handler: promhttp.Handler()}

			g.Add(func() error {
				ui.Info("Starting statistics endpoint on %s", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start statistics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics endpoint...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics endpoint: %v", err)
				}
			})
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error controlling fan %s: %v", fan.GetId(), err)
			}
		})
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	err = g.Run()
	_ = fan.Close()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}
