package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBTimetable MongoDatabaseName = "timetable"
)

// MongoDB collections
const (
	MongoCollectionUsers MongoCollection = "users"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyGroups     RedisKey = "timetable:groups" // 解析元件發佈的正規群組名單（list，有序）
	RedisKeyServerName RedisKey = "timetable"        // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdDelivery FluentdSubTag = "delivery_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
