package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Fluentd repository
type FluentdRepository struct {
	logRepository *LogRepository
}

func NewFluentdRepository(
	logRepository *LogRepository,
) *FluentdRepository {
	return &FluentdRepository{
		logRepository: logRepository,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewLogRepository,
	NewFluentdRepository)
