package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Cached PokeAPI documents live under pokeapi:{absolute url}
const cachePattern = "pokeapi:*"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning cached PokeAPI documents...")

	iter := client.Scan(ctx, 0, cachePattern, 0).Iterator()

	var invalidKeys []string
	var checkedCount int
	var noTTLCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err != redis.Nil {
				fmt.Printf("Error reading %s: %v\n", key, err)
			}
			continue
		}

		if !json.Valid(data) {
			fmt.Printf("✗ Invalid JSON in %s\n", key)
			invalidKeys = append(invalidKeys, key)
			continue
		}

		// Entries written without a TTL never refresh
		if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl < 0 {
			fmt.Printf("✗ No expiry on %s\n", key)
			invalidKeys = append(invalidKeys, key)
			noTTLCount++
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries (%d without expiry)\n",
		checkedCount, len(invalidKeys), noTTLCount)

	if len(invalidKeys) == 0 {
		fmt.Println("Cache is clean!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	deleted, err := client.Del(ctx, invalidKeys...).Result()
	if err != nil {
		log.Fatal("Failed to delete entries:", err)
	}
	fmt.Printf("Deleted %d entries\n", deleted)
}
