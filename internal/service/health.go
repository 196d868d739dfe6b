package service

import (
	"context"
	"sync/atomic"

	"timetable/internal/database/client"
)

type HealthService struct {
	live        atomic.Bool
	ready       atomic.Bool
	mongoClient *client.MongoClient
	redisClient *client.RedisClient
}

func NewHealthService(mongoClient *client.MongoClient, redisClient *client.RedisClient) *HealthService {
	s := &HealthService{mongoClient: mongoClient, redisClient: redisClient}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}

// CheckReady 實際 ping 兩個後端，並同步更新 readiness 旗標
func (s *HealthService) CheckReady(ctx context.Context) error {
	if err := s.mongoClient.Ping(ctx); err != nil {
		s.ready.Store(false)
		return err
	}
	if err := s.redisClient.Ping(ctx); err != nil {
		s.ready.Store(false)
		return err
	}
	s.ready.Store(true)
	return nil
}
