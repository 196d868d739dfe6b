package model

// DeliveryLog 出站 Telegram 訊息的稽核紀錄
type DeliveryLog struct {
	ChatID   int64  `json:"chat_id"`
	Kind     string `json:"kind"`
	HasMenu  bool   `json:"has_menu"`
	Outcome  string `json:"outcome"`
	Error    string `json:"error,omitempty"`
	Version  string `json:"version,omitempty"`
	LoggedAt string `json:"logged_at"`
}
