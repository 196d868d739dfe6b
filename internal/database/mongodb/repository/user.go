package repository

import (
	"context"
	"fmt"
	"time"

	"timetable/internal/core"
	client "timetable/internal/database/client"
	"timetable/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	repository := &UserRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBTimetable)).Collection(string(core.MongoCollectionUsers)),
	}
	// 啟動時建立常用索引（冪等、存在即跳過）
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// telegramId 的唯一索引讓「查後寫」的建號競態收斂成唯一鍵衝突，
// 由呼叫端把 duplicate key 視為「帳號已存在」
func (repository *UserRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "telegramId", Value: 1}},
			Options: options.Index().SetName("idx_telegramId_unique").SetUnique(true),
		},
		{ // 依建立時間倒序查列表
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_createdAt_desc"),
		},
	}
	_, _ = repository.collection.Indexes().CreateMany(ctx, indexModels)
	return nil
}

// Insert：單文件插入；telegramId 撞唯一索引時原樣回傳 driver 錯誤
func (repository *UserRepository) Insert(
	contextValue context.Context,
	user *model.User,
) (_ *model.User, returnedError error) {

	nowUTC := time.Now().UTC()
	// 若上游未指定 _id，可自己先產生；InsertOne 會沿用
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, user)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	user.ID = objectID
	return user, nil
}

// FindByTelegramID：單文件讀取；查無資料回傳 mongo.ErrNoDocuments
func (repository *UserRepository) FindByTelegramID(
	contextValue context.Context,
	telegramIdentifier int64,
) (_ *model.User, returnedError error) {

	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"telegramId": telegramIdentifier}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

// SetGroup：只更新 group 欄位（以 telegramId 篩選，last-write-wins）
func (repository *UserRepository) SetGroup(
	contextValue context.Context,
	telegramIdentifier int64,
	groupName string,
) (_ int64, returnedError error) {

	update := bson.M{"$set": bson.M{"group": groupName}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"telegramId": telegramIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// SetNotifications：只更新 notifications 欄位
func (repository *UserRepository) SetNotifications(
	contextValue context.Context,
	telegramIdentifier int64,
	enabled bool,
) (_ int64, returnedError error) {

	update := bson.M{"$set": bson.M{"notifications": enabled}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"telegramId": telegramIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// List：分頁查詢（注意：這裡預設 page 為「0 起算」）
func (repository *UserRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.User, returnedError error) {

	filter := listOptions.Filter
	if filter == nil {
		filter = bson.M{}
	}

	findOptions := options.Find().
		SetSkip(int64(listOptions.Page) * int64(listOptions.Size)).
		SetLimit(int64(listOptions.Size)).
		SetSort(bson.M{"createdAt": -1})

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var users []*model.User
	if returnedError = cursor.All(contextValue, &users); returnedError != nil {
		return nil, returnedError
	}
	return users, nil
}
