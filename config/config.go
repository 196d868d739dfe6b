package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Telegram  Telegram        `mapstructure:"TELEGRAM" json:"telegram" yaml:"telegram"`
	Roster    Roster          `mapstructure:"ROSTER" json:"roster" yaml:"roster"`
	Ops       Ops             `mapstructure:"OPS" json:"ops" yaml:"ops"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
