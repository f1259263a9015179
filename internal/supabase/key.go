package supabase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyInfo is what we can read out of a legacy JWT-style Supabase key.
type KeyInfo struct {
	Role      string
	ExpiresAt time.Time
}

func (k KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && now.After(k.ExpiresAt)
}

// InspectKey decodes the claims of key without verifying the signature;
// the signing secret lives on the Supabase side. Newer opaque keys
// (sb_publishable_...) report ok=false.
func InspectKey(key string) (KeyInfo, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return KeyInfo{}, false
	}

	var info KeyInfo
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
