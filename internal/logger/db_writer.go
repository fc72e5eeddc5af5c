package logger

import (
	"context"
	"fmt"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to the worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	IpAddress string
	Caller    string
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   cfg.AppId,
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by the Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop the log rather than blocking the API
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		doc := common_models.Log{
			Message:      entry.Message,
			IpAddress:    entry.IpAddress,
			LogLevelId:   mapLevelToInt(entry.Level),
			Caller:       entry.Caller,
			AppId:        w.appId,
			CreatedOnUtc: time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := w.db.Collection("logs").InsertOne(ctx, doc); err != nil {
			fmt.Println("Failed to persist log entry:", err)
		}
		cancel()
	}
}

func mapLevelToInt(level zapcore.Level) int {
	switch level {
	case zapcore.DebugLevel:
		return 1
	case zapcore.InfoLevel:
		return 2
	case zapcore.WarnLevel:
		return 3
	case zapcore.ErrorLevel:
		return 4
	default:
		return 5
	}
}
