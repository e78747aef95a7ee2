package configuration

type StatisticsConfig struct {
	// Enabled controls whether the prometheus exporter is started
	Enabled bool `json:"enabled"`
	// Port the exporter listens on
	Port int `json:"port"`
}
