package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/category"
)

// MaxVideoIDLen bounds YouTube video IDs (11 chars today, a little slack
// for future formats).
const MaxVideoIDLen = 16

// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// NormalizeCategory lowercases a category key. An unrecognized key maps to
// "all": category selection degrades to the identity filter rather than
// failing the request.
func NormalizeCategory(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || key == "all" {
		return "all"
	}
	if !category.IsKnown(key) {
		Logger.Debug().Str("category", key).Msg("unknown category, serving unfiltered")
		return "all"
	}
	return key
}
