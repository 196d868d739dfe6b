package service

import (
	"context"
	"errors"
	"testing"

	"timetable/internal/core"
	"timetable/internal/database/mongodb/model"
	cErr "timetable/internal/pkg/error"
	"timetable/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ---- fakes ----

type memRecords struct {
	users      map[int64]*model.User
	insertErr  error
	setGroup   int
	setNotif   int
	insertSeen int
}

func newMemRecords() *memRecords {
	return &memRecords{users: map[int64]*model.User{}}
}

func (m *memRecords) Insert(_ context.Context, user *model.User) (*model.User, error) {
	m.insertSeen++
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	if _, exists := m.users[user.TelegramID]; exists {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	copied := *user
	m.users[user.TelegramID] = &copied
	return &copied, nil
}

func (m *memRecords) FindByTelegramID(_ context.Context, id int64) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (m *memRecords) SetGroup(_ context.Context, id int64, group string) (int64, error) {
	m.setGroup++
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.Group = &group
	return 1, nil
}

func (m *memRecords) SetNotifications(_ context.Context, id int64, enabled bool) (int64, error) {
	m.setNotif++
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.Notifications = enabled
	return 1, nil
}

func (m *memRecords) List(_ context.Context, _ core.ListOptions) ([]*model.User, error) {
	out := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

type fixedRoster struct {
	groups []string
	calls  int
}

func (f *fixedRoster) Groups() []string {
	f.calls++
	return f.groups
}

type sentMessage struct {
	chatID int64
	text   string
	menu   *core.Menu
}

type recordingNotifier struct {
	sends []sentMessage
}

func (r *recordingNotifier) Send(_ context.Context, chatID int64, text string, menu *core.Menu) {
	r.sends = append(r.sends, sentMessage{chatID: chatID, text: text, menu: menu})
}

func newTestService(records UserRecords, groups *fixedRoster, notifier *recordingNotifier) *AccountService {
	return NewAccountService(zap.NewNop(), &telemetry.Trace{}, &telemetry.Metric{}, records, groups, notifier)
}

func seedUser(records *memRecords, id int64, group string, notifications bool) {
	user := &model.User{TelegramID: id, FirstName: "Иван", Notifications: notifications}
	if group != "" {
		user.Group = &group
	}
	records.users[id] = user
}

// ---- creation ----

func TestCreateAccountIdempotent(t *testing.T) {
	records := newMemRecords()
	svc := newTestService(records, &fixedRoster{}, &recordingNotifier{})
	identity := Identity{TelegramID: 42, Username: "ivan", FirstName: "Иван"}

	first, err := svc.CreateAccount(context.Background(), identity)
	if err != nil {
		t.Fatalf("first CreateAccount: %v", err)
	}
	if first == nil || first.TelegramID != 42 {
		t.Fatalf("expected created user, got %+v", first)
	}
	if first.Notifications {
		t.Error("notifications must default to false")
	}
	if first.Group != nil {
		t.Error("group must be absent at creation")
	}

	second, err := svc.CreateAccount(context.Background(), identity)
	if err != nil {
		t.Fatalf("second CreateAccount: %v", err)
	}
	if second != nil {
		t.Fatalf("second call must be a no-op, got %+v", second)
	}
	if len(records.users) != 1 {
		t.Fatalf("exactly one record expected, got %d", len(records.users))
	}
}

func TestCreateAccountLosesInsertRace(t *testing.T) {
	records := newMemRecords()
	svc := newTestService(records, &fixedRoster{}, &recordingNotifier{})

	// 先查不到、插入時撞唯一索引：視同已存在
	records.insertErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	created, err := svc.CreateAccount(context.Background(), Identity{TelegramID: 7, FirstName: "Пётр"})
	if err != nil {
		t.Fatalf("duplicate insert must not surface an error: %v", err)
	}
	if created != nil {
		t.Fatalf("race loser must return no new account, got %+v", created)
	}
}

// ---- reads ----

func TestGetUserByIDNotFound(t *testing.T) {
	svc := newTestService(newMemRecords(), &fixedRoster{}, &recordingNotifier{})
	user, err := svc.GetUserByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("unknown id must not be an error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

// ---- group resolution ----

func TestChangeGroupResolvesFirstMatchInOrder(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "", false)
	notifier := &recordingNotifier{}
	svc := newTestService(records, &fixedRoster{groups: []string{"Group A-101", "Group A-102"}}, notifier)

	ok, err := svc.ChangeGroup(context.Background(), 1, "a-101")
	if err != nil || !ok {
		t.Fatalf("ChangeGroup = %v, %v", ok, err)
	}
	if got := *records.users[1].Group; got != "Group A-101" {
		t.Fatalf("resolved group = %q", got)
	}

	// 子字串同時含於兩個項目：名單順序決勝，第一個獲勝
	ok, err = svc.ChangeGroup(context.Background(), 1, "  A-10")
	if err != nil || !ok {
		t.Fatalf("ChangeGroup = %v, %v", ok, err)
	}
	if got := *records.users[1].Group; got != "Group A-101" {
		t.Fatalf("tie-break must pick first entry, got %q", got)
	}
}

func TestChangeGroupStoresTrimmedOriginalCase(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "", false)
	notifier := &recordingNotifier{}
	svc := newTestService(records, &fixedRoster{groups: []string{"  ИСИП-21  "}}, notifier)

	ok, err := svc.ChangeGroup(context.Background(), 1, "исип")
	if err != nil || !ok {
		t.Fatalf("ChangeGroup = %v, %v", ok, err)
	}
	if got := *records.users[1].Group; got != "ИСИП-21" {
		t.Fatalf("stored value must be the trimmed original-cased roster entry, got %q", got)
	}
	if len(notifier.sends) != 1 {
		t.Fatalf("expected one confirmation, got %d", len(notifier.sends))
	}
	if notifier.sends[0].text != "Вы успешно выбрали ИСИП-21 группу" {
		t.Errorf("confirmation text = %q", notifier.sends[0].text)
	}
}

func TestChangeGroupNoMatchLeavesStateAndSendsMessage(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "Старая", false)
	notifier := &recordingNotifier{}
	svc := newTestService(records, &fixedRoster{groups: []string{"Group A-101", "Group A-102"}}, notifier)

	ok, err := svc.ChangeGroup(context.Background(), 1, "zzz")
	if err != nil {
		t.Fatalf("no-match is not an error: %v", err)
	}
	if ok {
		t.Fatal("no-match must return false")
	}
	if got := *records.users[1].Group; got != "Старая" {
		t.Fatalf("group must stay unchanged, got %q", got)
	}
	if len(notifier.sends) != 1 || notifier.sends[0].text != msgGroupNotFound {
		t.Fatalf("expected %q, got %+v", msgGroupNotFound, notifier.sends)
	}
}

func TestChangeGroupEmptyInputShortCircuits(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "", false)
	notifier := &recordingNotifier{}
	groups := &fixedRoster{groups: []string{"Group A-101"}}
	svc := newTestService(records, groups, notifier)

	for _, input := range []string{"", "   "} {
		ok, err := svc.ChangeGroup(context.Background(), 1, input)
		if err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
		if ok {
			t.Fatalf("input %q must fail", input)
		}
	}
	if groups.calls != 0 {
		t.Error("roster must not be consulted for absent input")
	}
	if records.setGroup != 0 {
		t.Error("no persistence write allowed for absent input")
	}
	if len(notifier.sends) != 0 {
		t.Error("no message allowed for absent input")
	}
}

func TestChangeGroupUnknownAccountFailsLoudly(t *testing.T) {
	records := newMemRecords() // 沒有帳號
	svc := newTestService(records, &fixedRoster{groups: []string{"Group A-101"}}, &recordingNotifier{})

	_, err := svc.ChangeGroup(context.Background(), 404, "a-101")
	if err == nil {
		t.Fatal("missing account must fail loudly")
	}
	var appError *cErr.Error
	if !errors.As(err, &appError) || appError.ErrorCode() != cErr.PRECONDITION_VIOLATION {
		t.Fatalf("expected precondition violation, got %v", err)
	}
}

// ---- notifications toggle ----

func TestToggleRefusedWithoutGroup(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "", false)
	notifier := &recordingNotifier{}
	svc := newTestService(records, &fixedRoster{}, notifier)

	changed, err := svc.UpdateNotificationsStatus(context.Background(), 1)
	if err != nil {
		t.Fatalf("UpdateNotificationsStatus: %v", err)
	}
	if changed {
		t.Fatal("toggle must refuse while group is absent")
	}
	if records.users[1].Notifications {
		t.Fatal("notifications must stay false")
	}
	if records.setNotif != 0 {
		t.Fatal("no persistence write allowed")
	}
	if len(notifier.sends) != 1 || notifier.sends[0].text != msgPickGroupFirst {
		t.Fatalf("expected pick-group prompt, got %+v", notifier.sends)
	}
}

func TestToggleCycle(t *testing.T) {
	records := newMemRecords()
	seedUser(records, 1, "ИСИП-21", false)
	notifier := &recordingNotifier{}
	svc := newTestService(records, &fixedRoster{}, notifier)

	// false → true：訂閱
	changed, err := svc.UpdateNotificationsStatus(context.Background(), 1)
	if err != nil || !changed {
		t.Fatalf("first toggle = %v, %v", changed, err)
	}
	if !records.users[1].Notifications {
		t.Fatal("notifications must be on after first toggle")
	}
	first := notifier.sends[0]
	if first.text != "Вы успешно подписались на расписание группы ИСИП-21" {
		t.Errorf("subscribe text = %q", first.text)
	}
	if first.menu == nil || first.menu.Rows[3][0] != core.MenuLabelUnsubscribe {
		t.Errorf("fourth row must offer unsubscribe, got %+v", first.menu)
	}

	// true → false：退訂
	changed, err = svc.UpdateNotificationsStatus(context.Background(), 1)
	if err != nil || !changed {
		t.Fatalf("second toggle = %v, %v", changed, err)
	}
	if records.users[1].Notifications {
		t.Fatal("notifications must be off after second toggle")
	}
	second := notifier.sends[1]
	if second.text != "Вы успешно отменили подписку на расписание группы ИСИП-21" {
		t.Errorf("unsubscribe text = %q", second.text)
	}
	if second.menu == nil || second.menu.Rows[3][0] != core.MenuLabelSubscribe {
		t.Errorf("fourth row must offer subscribe, got %+v", second.menu)
	}

	// 第三次呼叫回到第一次之後的狀態，構成 2-cycle
	if _, err = svc.UpdateNotificationsStatus(context.Background(), 1); err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if !records.users[1].Notifications {
		t.Fatal("three toggles must land back on subscribed")
	}
	if notifier.sends[2].text != first.text {
		t.Errorf("third message %q should match first %q", notifier.sends[2].text, first.text)
	}
}

func TestToggleUnknownAccountFailsLoudly(t *testing.T) {
	svc := newTestService(newMemRecords(), &fixedRoster{}, &recordingNotifier{})
	_, err := svc.UpdateNotificationsStatus(context.Background(), 404)
	var appError *cErr.Error
	if !errors.As(err, &appError) || appError.ErrorCode() != cErr.PRECONDITION_VIOLATION {
		t.Fatalf("expected precondition violation, got %v", err)
	}
}

// ---- menu shape ----

func TestNotificationsMenuShape(t *testing.T) {
	menu := notificationsMenu(true)
	if len(menu.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(menu.Rows))
	}
	fixed := []string{core.MenuLabelDaySchedule, core.MenuLabelWeekSchedule, core.MenuLabelChangeGroup}
	for i, want := range fixed {
		if menu.Rows[i][0] != want {
			t.Errorf("row %d = %q, want %q", i, menu.Rows[i][0], want)
		}
	}
	if !menu.Resize {
		t.Error("menu must request keyboard resize")
	}
	if menu.Placeholder != core.MenuPlaceholder {
		t.Errorf("placeholder = %q", menu.Placeholder)
	}
}
