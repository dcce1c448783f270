package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"
	PermissionRatesWrite = "rates:write"

	// User permissions
	PermissionWalletRead      = "wallet:read"
	PermissionWalletWrite     = "wallet:write"
	PermissionTipRead         = "tip:read"
	PermissionTipWrite        = "tip:write"
	PermissionWithdrawalWrite = "withdrawal:write"
	PermissionLeaderboardRead = "leaderboard:read"
	PermissionChangePassword  = "user:change-password"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionRatesWrite,
			PermissionWalletRead,
			PermissionWalletWrite,
			PermissionTipRead,
			PermissionTipWrite,
			PermissionWithdrawalWrite,
			PermissionLeaderboardRead,
			PermissionChangePassword,
		}
	default:
		return []string{
			PermissionWalletRead,
			PermissionTipRead,
			PermissionTipWrite,
			PermissionWithdrawalWrite,
			PermissionLeaderboardRead,
			PermissionChangePassword,
		}
	}
}
