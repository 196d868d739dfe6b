package service

import (
	"timetable/internal/database/mongodb/repository"
	"timetable/internal/roster"

	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewAccountService,
	NewHealthService,
	wire.Bind(new(UserRecords), new(*repository.UserRepository)),
	wire.Bind(new(GroupRoster), new(*roster.Provider)),
)
