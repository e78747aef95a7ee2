package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/svanherk/casefan/internal/controller"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controller controller.FanController
	fanId      string

	temperature *prometheus.Desc
	speed       *prometheus.Desc
	tickCount   *prometheus.Desc
	writeCount  *prometheus.Desc
}

func NewControllerCollector(ctrl controller.FanController, fanId string) *ControllerCollector {
	return &ControllerCollector{
		controller: ctrl,
		fanId:      fanId,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_celsius"),
			"Temperature sampled on the most recent tick of the control loop",
			[]string{"id"}, nil,
		),
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "speed"),
			"Speed value last written to the fan controller",
			[]string{"id"}, nil,
		),
		tickCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "tick_count"),
			"Counter for completed sample/compute cycles",
			[]string{"id"}, nil,
		),
		writeCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "write_count"),
			"Counter for confirmed speed register writes",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.speed
	ch <- collector.tickCount
	ch <- collector.writeCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	stats := collector.controller.GetStatistics()
	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, stats.Temperature, collector.fanId)
	ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(stats.Speed), collector.fanId)
	ch <- prometheus.MustNewConstMetric(collector.tickCount, prometheus.CounterValue, float64(stats.Ticks), collector.fanId)
	ch <- prometheus.MustNewConstMetric(collector.writeCount, prometheus.CounterValue, float64(stats.Writes), collector.fanId)
}
