package utils

import (
	"testing"
)

func TestGetConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "9999")

	if got := GetConfig("APP_PORT"); got != "9999" {
		t.Errorf("GetConfig(APP_PORT) = %q, want %q", got, "9999")
	}
}

func TestGetConfigDefaults(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "DB_SSLMODE", want: "disable"},
		{key: "RATE_LIMIT_PER_SECOND", want: "10"},
		{key: "LOG_FORMAT", want: "json"},
		{key: "UNKNOWN_KEY", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetConfig(tt.key); got != tt.want {
				t.Errorf("GetConfig(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetConfigInt(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")
	if got := GetConfigInt("TOKEN_TTL_MINUTES", 60); got != 60 {
		t.Errorf("GetConfigInt() = %d, want 60", got)
	}

	t.Setenv("TOKEN_TTL_MINUTES", "15")
	if got := GetConfigInt("TOKEN_TTL_MINUTES", 60); got != 15 {
		t.Errorf("GetConfigInt() = %d, want 15", got)
	}
}

func TestValidatorCustomTags(t *testing.T) {
	InitValidator()

	type payload struct {
		Slug     string `validate:"slug"`
		Username string `validate:"username"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr bool
	}{
		{name: "valid", in: payload{Slug: "breakfast_2", Username: "chef.anna+1"}},
		{name: "slug with space", in: payload{Slug: "hot dish", Username: "chef"}, wantErr: true},
		{name: "username with slash", in: payload{Slug: "lunch", Username: "a/b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
