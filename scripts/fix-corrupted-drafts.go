package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

const (
	draftPattern   = "armor:draft:*"
	draftKeyPrefix = "armor:draft:"
	draftIndexKey  = "armor:drafts"
)

// checkDraft reports why a stored draft can no longer be loaded, or "" when it is fine
func checkDraft(data string) string {
	var draft mech.ArmorDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return "corrupted JSON"
	}
	if draft.ID == "" {
		return "missing id"
	}
	for loc := range draft.Allocation {
		if !loc.IsValid() {
			return fmt.Sprintf("unknown location %q", loc)
		}
	}
	if draft.HistoryIndex < 0 || (len(draft.History) > 0 && draft.HistoryIndex >= len(draft.History)) {
		return fmt.Sprintf("history index %d out of range", draft.HistoryIndex)
	}
	return ""
}

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
	fmt.Println("Scanning for corrupted armor drafts...")

	iter := client.Scan(ctx, 0, draftPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if problem := checkDraft(data); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// index entries whose draft expired or was never written
	var danglingIDs []string
	ids, err := client.SMembers(ctx, draftIndexKey).Result()
	if err != nil {
		log.Fatal("Failed to read draft index:", err)
	}
	for _, id := range ids {
		n, err := client.Exists(ctx, draftKeyPrefix+id).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", id, err)
			continue
		}
		if n == 0 {
			danglingIDs = append(danglingIDs, id)
		}
	}

	fmt.Printf("\nChecked %d drafts, found %d corrupted entries and %d dangling index entries\n",
		checkedCount, len(corruptedKeys), len(danglingIDs))

	if len(corruptedKeys) == 0 && len(danglingIDs) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}
	for _, id := range danglingIDs {
		fmt.Printf("  - index: %s\n", id)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // an empty answer aborts

	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		id := strings.TrimPrefix(key, draftKeyPrefix)
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, draftIndexKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, id := range danglingIDs {
		if err := client.SRem(ctx, draftIndexKey, id).Err(); err != nil {
			fmt.Printf("Failed to unindex %s: %v\n", id, err)
		}
	}
	fmt.Println("\nCleanup complete!")
}
