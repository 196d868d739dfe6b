package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	rosterRepo *RosterRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	rosterRepo *RosterRepository,
) *RedisRepository {
	return &RedisRepository{
		rosterRepo: rosterRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewRosterRepository,
	NewRedisRepository)
