package dto

import (
	"time"

	"timetable/internal/database/mongodb/model"
)

// 指派群組（營運後台代使用者觸發同一套解析流程）
type AssignGroupDto struct {
	Group string `json:"group" binding:"required"` // 自由文字，與聊天輸入走同一套解析
}

type UserResponseDto struct {
	ID            string    `json:"id"`
	TelegramID    int64     `json:"telegramId"`
	Username      string    `json:"username,omitempty"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName,omitempty"`
	Group         *string   `json:"group,omitempty"`
	Notifications bool      `json:"notifications"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewUserResponse(user *model.User) *UserResponseDto {
	return &UserResponseDto{
		ID:            user.ID.Hex(),
		TelegramID:    user.TelegramID,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Group:         user.Group,
		Notifications: user.Notifications,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
