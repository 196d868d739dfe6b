package core

// Menu 描述一組 reply-keyboard：每列數顆按鈕，外加兩個顯示旗標。
// 對傳訊層以外的程式碼而言只是純資料，不依賴 Bot API 型別。
type Menu struct {
	Rows        [][]string
	Resize      bool
	Placeholder string
}

// Bot 主選單按鈕文字（與指令分派元件共用同一組字串）
const (
	MenuLabelDaySchedule  = "🎰Посмотреть расписание на день🎰"
	MenuLabelWeekSchedule = "🔪Посмотреть расписание на неделю🔪"
	MenuLabelChangeGroup  = "👨‍👨‍👧‍👦Сменить группу👨‍👨‍👧‍👦"
	MenuLabelSubscribe    = "💳Подписаться на рассылку💳"
	MenuLabelUnsubscribe  = "🙏Отписаться от рассылки🙏"

	MenuPlaceholder = "Выберите действие"
)
