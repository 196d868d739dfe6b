package config

type Telegram struct {
	// Bot API token（@BotFather 發放）
	Token string `mapstructure:"TOKEN" json:"token" yaml:"token"`
	// 是否開啟 Bot API 除錯輸出
	Debug bool `mapstructure:"DEBUG" json:"debug" yaml:"debug"`
}
