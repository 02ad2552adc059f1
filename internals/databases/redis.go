// file: internals/databases/redis.go
package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"smartcollege_backend/internals/configs"
)

// Redis holds short-lived auth state: OTP hashes, reset-rate counters.
var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     configs.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: configs.GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis not reachable (%v); OTP flow will fail until it is", err)
		return
	}
	log.Println("✅ Redis connected.")
}
