package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/metrics/counter"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

type commentRequest struct {
	Content  string `form:"content" validate:"required,min=1"`
	ParentID string `form:"parent_id"`
}

// HandleLike toggles the viewer's like on a video and returns the new state
// with the updated count.
func HandleLike(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.Video.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Video not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load video")
	}

	liked, err := repos.Engagement.ToggleLike(userCtx.UserID, videoID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to toggle like")
	}

	count, err := repos.Engagement.CountLikes(videoID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count likes")
	}

	status := "unliked"
	if liked {
		status = "liked"
	}

	return c.JSON(fiber.Map{"status": status, "likes": count})
}

// HandleComment creates a comment (optionally a reply) and returns it with
// the author denormalized for immediate display. Replies come back empty;
// clients re-fetch for nested threads.
func HandleComment(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid form data")
	}
	if err := validate.Struct(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_error", "Comment content is required")
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.Video.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Video not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load video")
	}

	comment := &models.Comment{
		Content: req.Content,
		UserID:  userCtx.UserID,
		VideoID: videoID,
	}
	if req.ParentID != "" {
		parentID, err := strconv.ParseUint(req.ParentID, 10, 32)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", "invalid parent_id")
		}
		pid := uint(parentID)
		comment.ParentID = &pid
	}

	if err := repos.Engagement.CreateComment(comment); err != nil {
		if errors.Is(err, models.ErrParentCommentMismatch) {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", "Parent comment does not belong to this video")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create comment")
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"comment": fiber.Map{
			"id":      comment.ID,
			"content": comment.Content,
			"user": fiber.Map{
				"firstname": userCtx.FirstName,
				"lastname":  userCtx.LastName,
			},
			"timestamp": comment.CreatedAt.Format(time.RFC3339),
			"replies":   []fiber.Map{},
		},
	})
}

// HandleFollow toggles the viewer's follow edge towards another user and
// returns the target's updated follower count.
func HandleFollow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid user id")
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.User.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	following, err := repos.Follow.Toggle(userCtx.UserID, targetID)
	if err != nil {
		if errors.Is(err, models.ErrSelfFollow) {
			return c.JSON(fiber.Map{"status": "cannot_follow_self"})
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to toggle follow")
	}

	count, err := repos.Follow.CountFollowers(targetID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count followers")
	}

	status := "unfollowed"
	if following {
		status = "followed"
	}

	return c.JSON(fiber.Map{"status": status, "followers": count})
}

// HandleView records a playback of a video. Counts accumulate in Redis and
// are flushed to the videos table in batches, so this stays cheap on the
// hot path.
func HandleView(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	if err := counter.AddVideoView(videoID); err != nil {
		fiberlog.Errorf("[View] Failed to count view for video %d: %v", videoID, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleShare returns a shareable deep link into the for-you feed. Nothing
// is persisted.
func HandleShare(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	if _, err := repository.GetGlobalRepositories().Video.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Video not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load video")
	}

	shareURL := fmt.Sprintf("%s/feed/for_you#video-%d", baseURL(c), videoID)

	return c.JSON(fiber.Map{"status": "success", "share_url": shareURL})
}
