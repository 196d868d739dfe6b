package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timetable/internal/bot"
	"timetable/internal/core"
	"timetable/internal/database/mongodb/model"
	cErr "timetable/internal/pkg/error"
	"timetable/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 使用者可見訊息（俄語，沿用既有機器人的措辭）
const (
	msgGroupNotFound   = "Группа не найдена"
	msgGroupChosen     = "Вы успешно выбрали %s группу"
	msgPickGroupFirst  = "Перед оформлением подписки на рассылку необходимо выбрать группу"
	msgSubscribedTo    = "Вы успешно подписались на расписание группы %s"
	msgUnsubscribedOff = "Вы успешно отменили подписку на расписание группы %s"
)

// UserRecords 帳號持久層（測試時以記憶體假件替代）
type UserRecords interface {
	Insert(contextValue context.Context, user *model.User) (*model.User, error)
	FindByTelegramID(contextValue context.Context, telegramIdentifier int64) (*model.User, error)
	SetGroup(contextValue context.Context, telegramIdentifier int64, groupName string) (int64, error)
	SetNotifications(contextValue context.Context, telegramIdentifier int64, enabled bool) (int64, error)
	List(contextValue context.Context, listOptions core.ListOptions) ([]*model.User, error)
}

// GroupRoster 正規群組名單快照（每次解析呼叫拿到固定一份）
type GroupRoster interface {
	Groups() []string
}

// Identity Telegram 外部身份（首次接觸時擷取的顯示欄位）
type Identity struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

type AccountService struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	records  UserRecords
	roster   GroupRoster
	notifier bot.Notifier
}

func NewAccountService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	records UserRecords,
	roster GroupRoster,
	notifier bot.Notifier,
) *AccountService {
	return &AccountService{
		logger:   logger,
		trace:    trace,
		metric:   metric,
		records:  records,
		roster:   roster,
		notifier: notifier,
	}
}

// CreateAccount 首次接觸建檔。同一 TelegramID 重複呼叫是冪等 no-op（回傳 nil, nil）。
// telegramId 上的唯一索引把先查後寫之間的競態關死：同時兩個建檔請求
// 最多只有一個 Insert 成功，落敗方視同「已存在」。
func (service *AccountService) CreateAccount(
	contextValue context.Context,
	identity Identity,
) (_ *model.User, returnedError error) {

	contextValue, span, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceAccountMeta{Op: "create", TelegramID: identity.TelegramID}

	existing, findError := service.records.FindByTelegramID(contextValue, identity.TelegramID)
	if findError != nil && !errors.Is(findError, mongo.ErrNoDocuments) {
		returnedError = cErr.DatabaseError("database FindByTelegramID error")
		return nil, returnedError
	}
	if existing != nil {
		traceMetadata.Outcome = "already_exists"
		service.trace.ApplyTraceAttributes(span, traceMetadata)
		return nil, nil
	}

	user := &model.User{
		TelegramID: identity.TelegramID,
		Username:   identity.Username,
		FirstName:  identity.FirstName,
		LastName:   identity.LastName,
		// group 建檔時不存在；notifications 預設關閉
		Notifications: false,
	}
	created, insertError := service.records.Insert(contextValue, user)
	if insertError != nil {
		if mongo.IsDuplicateKeyError(insertError) {
			// 競態落敗方：紀錄已由另一個請求建立
			traceMetadata.Outcome = "already_exists"
			service.trace.ApplyTraceAttributes(span, traceMetadata)
			return nil, nil
		}
		returnedError = cErr.DatabaseError("database Insert error")
		return nil, returnedError
	}

	traceMetadata.Created = true
	traceMetadata.Outcome = "created"
	service.trace.ApplyTraceAttributes(span, traceMetadata)
	service.logger.Info("account created",
		zap.Int64("telegramId", created.TelegramID),
		zap.String("firstName", created.FirstName))
	return created, nil
}

// GetUserByID 純讀取；查無此人回傳 (nil, nil) 而非錯誤
func (service *AccountService) GetUserByID(
	contextValue context.Context,
	telegramIdentifier int64,
) (_ *model.User, returnedError error) {

	contextValue, span, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceAccountMeta{Op: "get", TelegramID: telegramIdentifier}
	service.trace.ApplyTraceAttributes(span, traceMetadata)

	user, findError := service.records.FindByTelegramID(contextValue, telegramIdentifier)
	if findError != nil {
		if errors.Is(findError, mongo.ErrNoDocuments) {
			return nil, nil
		}
		returnedError = cErr.DatabaseError("database FindByTelegramID error")
		return nil, returnedError
	}
	return user, nil
}

// ChangeGroup 把自由文字解析成正規群組名稱並存檔。
// 回傳值：群組是否真的換成功。使用者輸入的問題（沒輸入、比對不到）
// 以聊天訊息回覆並回傳 false，不升級成錯誤；基礎設施問題照常往上拋。
func (service *AccountService) ChangeGroup(
	contextValue context.Context,
	telegramIdentifier int64,
	rawGroupInput string,
) (_ bool, returnedError error) {

	contextValue, span, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceAccountMeta{
		Op:         "change_group",
		TelegramID: telegramIdentifier,
		RawInput:   rawGroupInput,
	}

	// 沒有輸入：直接失敗，不發訊息、不碰名單與資料庫
	if strings.TrimSpace(rawGroupInput) == "" {
		traceMetadata.Outcome = "empty_input"
		service.trace.ApplyTraceAttributes(span, traceMetadata)
		service.countResolution("empty_input")
		return false, nil
	}

	resolvedGroup, matched := resolveGroup(service.roster.Groups(), rawGroupInput)
	if !matched {
		traceMetadata.Outcome = "no_match"
		service.trace.ApplyTraceAttributes(span, traceMetadata)
		service.countResolution("no_match")
		service.notifier.Send(contextValue, telegramIdentifier, msgGroupNotFound, nil)
		return false, nil
	}

	matchedCount, updateError := service.records.SetGroup(contextValue, telegramIdentifier, resolvedGroup)
	if updateError != nil {
		returnedError = cErr.DatabaseError("database SetGroup error")
		return false, returnedError
	}
	if matchedCount == 0 {
		// 呼叫端保證帳號已存在；走到這裡是整合錯誤，必須大聲失敗
		returnedError = cErr.Precondition(fmt.Sprintf("ChangeGroup for unknown account %d", telegramIdentifier))
		return false, returnedError
	}

	traceMetadata.ResolvedGroup = resolvedGroup
	traceMetadata.Outcome = "resolved"
	service.trace.ApplyTraceAttributes(span, traceMetadata)
	service.countResolution("resolved")

	service.notifier.Send(contextValue, telegramIdentifier, fmt.Sprintf(msgGroupChosen, resolvedGroup), nil)
	return true, nil
}

// UpdateNotificationsStatus 嚴格開關（true↔false，無法指定目標值）。
// group 未選時拒絕並提示先選群組，狀態不動。
// 回傳值：notifications 是否真的翻轉了。
func (service *AccountService) UpdateNotificationsStatus(
	contextValue context.Context,
	telegramIdentifier int64,
) (_ bool, returnedError error) {

	contextValue, span, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceAccountMeta{Op: "toggle_notifications", TelegramID: telegramIdentifier}

	user, findError := service.records.FindByTelegramID(contextValue, telegramIdentifier)
	if findError != nil {
		if errors.Is(findError, mongo.ErrNoDocuments) {
			returnedError = cErr.Precondition(fmt.Sprintf("UpdateNotificationsStatus for unknown account %d", telegramIdentifier))
			return false, returnedError
		}
		returnedError = cErr.DatabaseError("database FindByTelegramID error")
		return false, returnedError
	}

	// 不變量：group 不存在時 notifications 永遠不准打開
	if user.Group == nil {
		traceMetadata.Outcome = "no_group"
		service.trace.ApplyTraceAttributes(span, traceMetadata)
		service.notifier.Send(contextValue, telegramIdentifier, msgPickGroupFirst, nil)
		return false, nil
	}

	enabled := !user.Notifications
	matchedCount, updateError := service.records.SetNotifications(contextValue, telegramIdentifier, enabled)
	if updateError != nil {
		returnedError = cErr.DatabaseError("database SetNotifications error")
		return false, returnedError
	}
	if matchedCount == 0 {
		returnedError = cErr.Precondition(fmt.Sprintf("UpdateNotificationsStatus lost account %d mid-flight", telegramIdentifier))
		return false, returnedError
	}

	traceMetadata.Notifications = enabled
	traceMetadata.Outcome = "toggled"
	service.trace.ApplyTraceAttributes(span, traceMetadata)

	confirmation := fmt.Sprintf(msgUnsubscribedOff, *user.Group)
	if enabled {
		confirmation = fmt.Sprintf(msgSubscribedTo, *user.Group)
	}
	service.notifier.Send(contextValue, telegramIdentifier, confirmation, notificationsMenu(enabled))
	return true, nil
}

// ListUsers 管理介面分頁列舉
func (service *AccountService) ListUsers(
	contextValue context.Context,
	filter bson.M,
	page int64,
	size int64,
) (_ []*model.User, returnedError error) {

	contextValue, span, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	users, listError := service.records.List(contextValue, core.ListOptions{Filter: filter, Page: page, Size: size})
	if listError != nil {
		returnedError = cErr.DatabaseError("database List error")
		return nil, returnedError
	}
	service.trace.ApplyTraceAttributes(span, core.TraceUserListMeta{Page: page, Size: size, ResultCount: len(users)})
	return users, nil
}

// resolveGroup 把自由文字對應到名單上的一個正規名稱。
// 比對規則：雙方去頭尾空白並轉小寫後做「子字串包含」；
// 名單順序即決勝順序，第一個包含者獲勝，不打分數。
// 命中時回傳名單項目的原始大小寫（去頭尾空白），不是使用者輸入。
func resolveGroup(groupNames []string, rawInput string) (string, bool) {
	normalizedInput := strings.ToLower(strings.TrimSpace(rawInput))
	for _, groupName := range groupNames {
		trimmedGroup := strings.TrimSpace(groupName)
		if strings.Contains(strings.ToLower(trimmedGroup), normalizedInput) {
			return trimmedGroup, true
		}
	}
	return "", false
}

// notificationsMenu 四列回覆選單；第四列依訂閱狀態二擇一
func notificationsMenu(subscribed bool) *core.Menu {
	fourthRow := core.MenuLabelSubscribe
	if subscribed {
		fourthRow = core.MenuLabelUnsubscribe
	}
	return &core.Menu{
		Rows: [][]string{
			{core.MenuLabelDaySchedule},
			{core.MenuLabelWeekSchedule},
			{core.MenuLabelChangeGroup},
			{fourthRow},
		},
		Resize:      true,
		Placeholder: core.MenuPlaceholder,
	}
}

func (service *AccountService) countResolution(outcome string) {
	if service.metric != nil && service.metric.GroupResolutionTotal != nil {
		service.metric.GroupResolutionTotal.WithLabelValues(outcome).Inc()
	}
}
