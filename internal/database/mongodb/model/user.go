package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 一個 Telegram 身份對應一筆紀錄；telegramId 全域唯一（唯一索引）。
// group 在第一次解析成功前不存在；notifications 在 group 不存在時無意義。
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`                                  // 紀錄唯一識別碼（入庫時產生，之後不變）
	TelegramID    int64              `json:"telegramId" bson:"telegramId"`                   // Telegram 平台使用者 ID
	Username      string             `json:"username,omitempty" bson:"username,omitempty"`   // Telegram username（可缺）
	FirstName     string             `json:"firstName" bson:"firstName"`                     // 名
	LastName      string             `json:"lastName,omitempty" bson:"lastName,omitempty"`   // 姓（可缺）
	Group         *string            `json:"group,omitempty" bson:"group,omitempty"`         // 已選定的正規群組名稱
	Notifications bool               `json:"notifications" bson:"notifications"`             // 是否訂閱課表推播
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`                     // 建立時間
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`                     // 更新時間
}
