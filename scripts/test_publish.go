//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RoutePlannedEvent struct {
	RouteID    uuid.UUID `json:"route_id"`
	Interests  uint32    `json:"interests"`
	Wishes     uint32    `json:"wishes"`
	Movement   string    `json:"movement"`
	PlaceIDs   []string  `json:"place_ids"`
	DistanceKm float64   `json:"distance_km"`
	PlannedAt  time.Time `json:"planned_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	before, err := client.Get(ctx, "stats:routes:total").Int64()
	if err != nil && err != redis.Nil {
		log.Fatalf("Failed to read counter: %v", err)
	}

	event := RoutePlannedEvent{
		RouteID:    uuid.New(),
		Interests:  1 | 4,
		Movement:   "walking",
		PlaceIDs:   []string{"1", "2", "5"},
		DistanceKm: 2.4,
		PlannedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:route:planned",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:route:planned\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Route ID: %s\n", event.RouteID)

	fmt.Printf("\nWaiting for the stats worker to count it...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for stats worker")
			return
		case <-ticker.C:
			total, err := client.Get(ctx, "stats:routes:total").Int64()
			if err != nil && err != redis.Nil {
				continue
			}
			if total > before {
				fmt.Printf("Counted: stats:routes:total %d -> %d\n", before, total)
				return
			}
		}
	}
}
