package roster

import (
	"context"
	"sync/atomic"

	"timetable/internal/core"
	redisRepo "timetable/internal/database/redis/repository"
	"timetable/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewProvider,
	wire.Bind(new(Source), new(*redisRepo.RosterRepository)))

// Source 名單的外部來源（目前是 Redis list）
type Source interface {
	Groups(contextValue context.Context) ([]string, error)
}

// Provider 持有群組名單的記憶體快照。
// 名單由解析元件發佈到 Redis，這裡只負責重載與讀取；
// 讀取端拿到的 slice 不可修改。
type Provider struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	source   Source
	snapshot atomic.Pointer[[]string]
}

func NewProvider(
	logger *zap.Logger,
	trace *telemetry.Trace,
	source Source,
) *Provider {
	provider := &Provider{
		logger: logger,
		trace:  trace,
		source: source,
	}
	empty := []string{}
	provider.snapshot.Store(&empty)
	return provider
}

// Groups 回傳目前快照（發佈時的順序，含原始大小寫）
func (provider *Provider) Groups() []string {
	return *provider.snapshot.Load()
}

// Reload 從 Redis 重新讀取名單並替換快照。
// 讀取失敗或讀到空名單時保留上一份快照，避免把暫時性故障放大成全面查無群組。
func (provider *Provider) Reload(contextValue context.Context) (returnedError error) {
	contextValue, span, endSpan := provider.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceRosterMeta{Source: string(core.RedisKeyGroups)}

	groupNames, loadError := provider.source.Groups(contextValue)
	if loadError != nil {
		traceMetadata.Kept = true
		provider.trace.ApplyTraceAttributes(span, traceMetadata)
		provider.logger.Error("roster reload failed, keeping previous snapshot", zap.Error(loadError))
		returnedError = loadError
		return returnedError
	}
	if len(groupNames) == 0 && len(provider.Groups()) > 0 {
		traceMetadata.Kept = true
		provider.trace.ApplyTraceAttributes(span, traceMetadata)
		provider.logger.Warn("roster source is empty, keeping previous snapshot",
			zap.Int("previousCount", len(provider.Groups())))
		return nil
	}

	provider.snapshot.Store(&groupNames)
	traceMetadata.Count = len(groupNames)
	provider.trace.ApplyTraceAttributes(span, traceMetadata)
	provider.logger.Info("roster snapshot reloaded", zap.Int("count", len(groupNames)))
	return nil
}
