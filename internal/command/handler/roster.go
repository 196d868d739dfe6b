package command

import (
	"context"

	redisRepo "timetable/internal/database/redis/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type RosterHandler struct {
	logger     *zap.Logger
	rosterRepo *redisRepo.RosterRepository
}

func NewRosterHandler(logger *zap.Logger, rosterRepo *redisRepo.RosterRepository) *RosterHandler {
	return &RosterHandler{
		logger:     logger,
		rosterRepo: rosterRepo,
	}
}

// Print 直接從 Redis 讀目前發佈的名單（不經過快照）
func (handler *RosterHandler) Print(cmd *cobra.Command, args []string) {
	groups, err := handler.rosterRepo.Groups(context.Background())
	if err != nil {
		handler.logger.Error("read roster failed", zap.Error(err))
		return
	}
	if len(groups) == 0 {
		cmd.Println("(roster is empty)")
		return
	}
	for i, group := range groups {
		cmd.Printf("%4d  %s\n", i+1, group)
	}
}
