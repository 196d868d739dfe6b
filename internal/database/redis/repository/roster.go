package repository

import (
	"context"
	"strings"

	"timetable/config"
	"timetable/internal/core"
	client "timetable/internal/database/client"
	"timetable/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RosterRepository struct {
	trace     *telemetry.Trace
	client    *redis.Client
	rosterKey string
}

func NewRosterRepository(config *config.Configuration, trace *telemetry.Trace, client *client.RedisClient) *RosterRepository {
	rosterKey := string(core.RedisKeyGroups)
	if config.Roster.Key != "" {
		rosterKey = config.Roster.Key
	}
	return &RosterRepository{
		trace:     trace,
		client:    client.Client(),
		rosterKey: rosterKey,
	}
}

// Groups 讀取解析器發佈的完整群組名單（LRANGE 0 -1）。
// 空白項目直接略過，名單不存在時回傳空 slice 而非錯誤。
func (repository *RosterRepository) Groups(
	contextValue context.Context,
) (groupNames []string, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	rawEntries, rangeError := repository.client.LRange(contextValue, repository.rosterKey, 0, -1).Result()
	if rangeError != nil && rangeError != redis.Nil {
		returnedError = rangeError
		return nil, returnedError
	}

	groupNames = make([]string, 0, len(rawEntries))
	for _, rawEntry := range rawEntries {
		if strings.TrimSpace(rawEntry) == "" {
			continue
		}
		groupNames = append(groupNames, rawEntry)
	}

	traceMetadata := core.TraceRosterMeta{Source: repository.rosterKey, Count: len(groupNames)}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return groupNames, nil
}
