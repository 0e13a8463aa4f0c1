package counter

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/clipvibe/ClipVibe/internal/pkg/cache"
	"github.com/clipvibe/ClipVibe/internal/pkg/database"
)

const videoViewsKey = "video:counters:views"

// AddVideoView increments the pending view counter for a video in Redis.
// Without a Redis connection views are simply not counted.
func AddVideoView(videoID uint) error {
	rdb := cache.GetClient()
	if rdb == nil {
		return nil
	}

	ctx := context.Background()
	field := strconv.FormatUint(uint64(videoID), 10)
	return rdb.HIncrBy(ctx, videoViewsKey, field, 1).Err()
}

// Flush drains the pending view counters and applies them to the videos
// table in one batched update. Uses RENAME to a temporary key so in-flight
// increments are not lost while draining.
func Flush() error {
	rdb := cache.GetClient()
	if rdb == nil {
		return nil
	}

	ctx := context.Background()

	tmpKey := fmt.Sprintf("%s:tmp:%d", videoViewsKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", videoViewsKey, tmpKey).Err(); err != nil {
		// Nothing accumulated since the last flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") || err.Error() == "redis: nil" {
			return nil
		}
		return err
	}
	defer rdb.Del(ctx, tmpKey)

	data, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	type pair struct {
		id  uint64
		inc int64
	}
	pairs := make([]pair, 0, len(data))
	for k, v := range data {
		id, perr := strconv.ParseUint(k, 10, 64)
		if perr != nil {
			continue
		}
		inc, ierr := strconv.ParseInt(v, 10, 64)
		if ierr != nil || inc == 0 {
			continue
		}
		pairs = append(pairs, pair{id: id, inc: inc})
	}
	if len(pairs) == 0 {
		return nil
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })

	// UPDATE videos SET view_count = view_count + CASE id WHEN ? THEN ? ... END WHERE id IN (...)
	var builder strings.Builder
	args := make([]interface{}, 0, len(pairs)*3)
	builder.WriteString("UPDATE videos SET view_count = view_count + CASE id ")
	for _, p := range pairs {
		builder.WriteString(" WHEN ? THEN ?")
		args = append(args, p.id, p.inc)
	}
	builder.WriteString(" END WHERE id IN (")
	for i, p := range pairs {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString("?")
		args = append(args, p.id)
	}
	builder.WriteString(")")

	return database.GetDB().Exec(builder.String(), args...).Error
}

// StartFlushLoop flushes pending counters on the given interval until the
// process exits.
func StartFlushLoop(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := Flush(); err != nil {
				log.Printf("[Counter] flush failed: %v", err)
			}
		}
	}()
}
