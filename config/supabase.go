package config

import (
	"fmt"
	"os"
)

// SupabaseConfig holds the identity provider endpoints and keys. The service
// key is used for privileged server-side calls, the anon key for signup, login
// and token verification. JwksUrl is optional; when set, bearer tokens are
// verified locally against the provider's JWKS instead of a per-request
// network call.
type SupabaseConfig struct {
	Url        string
	ServiceKey string
	AnonKey    string
	JwksUrl    string
}

func GetSupabaseConfig() (*SupabaseConfig, error) {
	url := os.Getenv("SUPABASE_URL")
	if url == "" {
		return nil, fmt.Errorf("SUPABASE_URL must be set")
	}
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if serviceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY must be set")
	}
	anonKey := os.Getenv("SUPABASE_ANON_KEY")
	if anonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY must be set")
	}

	return &SupabaseConfig{
		Url:        url,
		ServiceKey: serviceKey,
		AnonKey:    anonKey,
		JwksUrl:    os.Getenv("SUPABASE_JWKS_URL"),
	}, nil
}
