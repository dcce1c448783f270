package utils

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultAppURL = "http://localhost:3000"

// AppURL returns the externally visible base URL of the application.
func AppURL() string {
	if base := os.Getenv("APP_URL"); base != "" {
		return strings.TrimRight(base, "/")
	}
	return defaultAppURL
}

// ClaimURL builds the link a recipient follows to claim a tip.
func ClaimURL(claimReference string) string {
	return AppURL() + "/claim/" + url.PathEscape(claimReference)
}

// LeaderboardURL builds the public link to a leaderboard.
func LeaderboardURL(id uint) string {
	return AppURL() + "/leaderboards/" + strconv.FormatUint(uint64(id), 10)
}
