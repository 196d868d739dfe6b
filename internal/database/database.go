package database

import (
	client "timetable/internal/database/client"
	fluentdRepo "timetable/internal/database/fluentd/repository"
	mongoRepo "timetable/internal/database/mongodb/repository"
	redisRepo "timetable/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
