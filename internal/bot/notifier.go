package bot

import (
	"context"

	"timetable/config"
	"timetable/internal/core"
	fluentdModel "timetable/internal/database/fluentd/model"
	fluentdRepo "timetable/internal/database/fluentd/repository"
	"timetable/internal/telemetry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewTelegramNotifier,
	wire.Bind(new(Notifier), new(*TelegramNotifier)))

// Notifier 出站聊天訊息。Fire-and-forget：發送失敗只記錄，
// 不回傳錯誤，絕不影響呼叫端已完成的資料寫入。
type Notifier interface {
	Send(contextValue context.Context, chatID int64, text string, menu *core.Menu)
}

type TelegramNotifier struct {
	api           *tgbotapi.BotAPI
	logger        *zap.Logger
	trace         *telemetry.Trace
	metric        *telemetry.Metric
	logRepository *fluentdRepo.LogRepository
}

func NewTelegramNotifier(
	configuration *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logRepository *fluentdRepo.LogRepository,
) (*TelegramNotifier, error) {
	api, apiError := tgbotapi.NewBotAPI(configuration.Telegram.Token)
	if apiError != nil {
		return nil, apiError
	}
	api.Debug = configuration.Telegram.Debug
	logger.Info("telegram bot authorized", zap.String("username", api.Self.UserName))

	return &TelegramNotifier{
		api:           api,
		logger:        logger,
		trace:         trace,
		metric:        metric,
		logRepository: logRepository,
	}, nil
}

// Send 發送一則聊天訊息，menu 非 nil 時附上回覆鍵盤。
// 失敗走獨立通道：zap error log + fluentd delivery log + 失敗計數。
func (notifier *TelegramNotifier) Send(
	contextValue context.Context,
	chatID int64,
	text string,
	menu *core.Menu,
) {
	contextValue, span, endSpan := notifier.trace.WithSpan(contextValue)

	traceMetadata := core.TraceNotifyMeta{ChatID: chatID, HasMenu: menu != nil}
	notifier.trace.ApplyTraceAttributes(span, traceMetadata)

	message := tgbotapi.NewMessage(chatID, text)
	if menu != nil {
		message.ReplyMarkup = replyKeyboard(menu)
	}

	_, sendError := notifier.api.Send(message)
	endSpan(sendError)

	deliveryRecord := fluentdModel.DeliveryLog{
		ChatID:  chatID,
		Kind:    "message",
		HasMenu: menu != nil,
		Outcome: "sent",
	}
	if sendError != nil {
		deliveryRecord.Outcome = "failed"
		deliveryRecord.Error = sendError.Error()
		notifier.logger.Error("telegram send failed",
			zap.Int64("chatId", chatID),
			zap.Error(sendError))
		if notifier.metric.NotifyFailTotal != nil {
			notifier.metric.NotifyFailTotal.WithLabelValues("telegram_api").Inc()
		}
	} else if notifier.metric.NotifySentTotal != nil {
		notifier.metric.NotifySentTotal.WithLabelValues("ok").Inc()
	}

	if auditError := notifier.logRepository.LogDelivery(contextValue, deliveryRecord); auditError != nil {
		notifier.logger.Warn("delivery audit log failed", zap.Error(auditError))
	}
}

// replyKeyboard 把選單轉成 Telegram ReplyKeyboardMarkup
func replyKeyboard(menu *core.Menu) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(menu.Rows))
	for _, labels := range menu.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, buttons)
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = menu.Resize
	keyboard.InputFieldPlaceholder = menu.Placeholder
	return keyboard
}
