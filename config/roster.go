package config

type Roster struct {
	// Redis list key，解析元件會把正規群組名單發佈到這裡
	Key string `mapstructure:"KEY" json:"key" yaml:"key"`
	// 快照重載排程（cron 表達式，含秒欄位），例如 "0 */5 * * * *"
	ReloadSpec string `mapstructure:"RELOAD_SPEC" json:"reloadSpec" yaml:"reloadSpec"`
}
