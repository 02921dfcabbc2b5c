package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"TimeflowGo/models"
)

// TimestampLayout 时间戳的存储格式，定宽UTC文本，字典序与时间序一致
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// taskDocument 任务在MongoDB中的文档结构
// 日期和时间戳均以ISO-8601文本存储，业务ID独立于MongoDB的_id
type taskDocument struct {
	ID          string  `bson:"id"`
	Title       string  `bson:"title"`
	Description *string `bson:"description"`
	DueDate     *string `bson:"due_date"`
	Status      string  `bson:"status"`
	Priority    string  `bson:"priority"`
	CreatedAt   string  `bson:"created_at"`
	UpdatedAt   string  `bson:"updated_at"`
}

// taskToDocument 将任务模型编码为存储文档
func taskToDocument(task models.Task) taskDocument {
	doc := taskDocument{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt:   task.UpdatedAt.UTC().Format(TimestampLayout),
	}
	if task.DueDate != nil {
		due := task.DueDate.String()
		doc.DueDate = &due
	}
	return doc
}

// documentToTask 将存储文档解码回任务模型
func documentToTask(doc taskDocument) (models.Task, error) {
	task := models.Task{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Status:      models.TaskStatus(doc.Status),
		Priority:    models.TaskPriority(doc.Priority),
	}
	if doc.DueDate != nil {
		due, err := models.ParseDateOnly(*doc.DueDate)
		if err != nil {
			return models.Task{}, fmt.Errorf("解析due_date失败: %v", err)
		}
		task.DueDate = &due
	}
	createdAt, err := time.Parse(TimestampLayout, doc.CreatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("解析created_at失败: %v", err)
	}
	updatedAt, err := time.Parse(TimestampLayout, doc.UpdatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("解析updated_at失败: %v", err)
	}
	task.CreatedAt = createdAt
	task.UpdatedAt = updatedAt
	return task, nil
}

// MongoTaskStore 基于MongoDB的任务存储
type MongoTaskStore struct {
	coll *mongo.Collection
}

func NewMongoTaskStore(db *mongo.Database) *MongoTaskStore {
	return &MongoTaskStore{coll: db.Collection("tasks")}
}

func (s *MongoTaskStore) Insert(ctx context.Context, task models.Task) error {
	_, err := s.coll.InsertOne(ctx, taskToDocument(task))
	return err
}

func (s *MongoTaskStore) FindByID(ctx context.Context, id string) (models.Task, error) {
	var doc taskDocument
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return documentToTask(doc)
}

func (s *MongoTaskStore) Find(ctx context.Context, query TaskQuery) ([]models.Task, error) {
	filter := bson.M{}
	dueFilter := bson.M{}
	if query.DueFrom != nil {
		dueFilter["$gte"] = query.DueFrom.String()
	}
	if query.DueTo != nil {
		dueFilter["$lt"] = query.DueTo.String()
	}
	if len(dueFilter) > 0 {
		filter["due_date"] = dueFilter
	}
	if query.StatusNot != "" {
		filter["status"] = bson.M{"$ne": string(query.StatusNot)}
	}

	opts := options.Find()
	if query.SortBy != "" {
		order := 1
		if query.SortDesc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: query.SortBy, Value: order}})
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]models.Task, 0)
	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		task, err := documentToTask(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *MongoTaskStore) UpdateByID(ctx context.Context, id string, patch TaskPatch) error {
	set := bson.M{"updated_at": patch.UpdatedAt.UTC().Format(TimestampLayout)}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		set["due_date"] = patch.DueDate.String()
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		set["priority"] = string(*patch.Priority)
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *MongoTaskStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}
