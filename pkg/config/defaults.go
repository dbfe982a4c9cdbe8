package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "paintbooking"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort      = "3000"
	DefaultStaticDir = "web/static"

	DefaultSessionTTL = 24 * time.Hour
	DefaultBcryptCost = 10

	DefaultKafkaTopic = "paintbooking.events"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"
)
