package statistics

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/internal/pkg/cache"
	"github.com/clipvibe/ClipVibe/internal/pkg/database"
)

const (
	CacheKeyVideosTotal = "statistics:videos:total"
	CacheKeyVideosDaily = "statistics:videos:daily:%s" // date formatted YYYY-MM-DD
	CacheKeyUsers       = "statistics:users:total"
	CacheExpiration     = 30 * time.Minute
)

// StatisticsData holds the public platform counters shown on the login page.
type StatisticsData struct {
	TodayVideos int
	TotalVideos int
	TotalUsers  int
}

// GetStatisticsData returns all platform counters, cache-first with a
// database fallback per key.
func GetStatisticsData() StatisticsData {
	return StatisticsData{
		TodayVideos: GetTodayVideos(),
		TotalVideos: GetTotalVideos(),
		TotalUsers:  GetTotalUsers(),
	}
}

// GetTotalVideos returns the total number of uploaded videos.
func GetTotalVideos() int {
	return cachedCount(CacheKeyVideosTotal, func() (int64, error) {
		var count int64
		err := database.GetDB().Model(&models.Video{}).Count(&count).Error
		return count, err
	})
}

// GetTodayVideos returns the number of videos uploaded today.
func GetTodayVideos() int {
	today := time.Now().Format("2006-01-02")
	key := fmt.Sprintf(CacheKeyVideosDaily, today)

	return cachedCount(key, func() (int64, error) {
		dayStart, _ := time.Parse("2006-01-02", today)
		dayEnd := dayStart.Add(24 * time.Hour)

		var count int64
		err := database.GetDB().Model(&models.Video{}).
			Where("created_at BETWEEN ? AND ?", dayStart, dayEnd).
			Count(&count).Error
		return count, err
	})
}

// GetTotalUsers returns the total number of registered users.
func GetTotalUsers() int {
	return cachedCount(CacheKeyUsers, func() (int64, error) {
		var count int64
		err := database.GetDB().Model(&models.User{}).Count(&count).Error
		return count, err
	})
}

func cachedCount(key string, query func() (int64, error)) int {
	if val, err := cache.Get(key); err == nil {
		if count, perr := strconv.ParseInt(val, 10, 64); perr == nil {
			return int(count)
		}
	}

	count, err := query()
	if err != nil {
		log.Printf("[Statistics] count query for %s failed: %v", key, err)
		return 0
	}

	if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil && !errors.Is(err, cache.ErrUnavailable) {
		log.Printf("[Statistics] caching %s failed: %v", key, err)
	}

	return int(count)
}
