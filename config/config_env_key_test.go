package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "institute",
			"log": map[string]any{
				"pretty": true,
				"level":  "info",
			},
		},
		"postgres": map[string]any{
			"sslMode":         "disable",
			"maxOpenConns":    10,
			"connMaxLifetime": "1h",
		},
		"jwt": map[string]any{
			"accessTTL": "15m",
		},
		"upload": map[string]any{
			"maxFileSize": 5242880,
		},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "matches camelCase leaf from flat env segments",
			raw:  "POSTGRES_SSLMODE",
			want: "postgres.sslMode",
		},
		{
			name: "matches nested camelCase path",
			raw:  "ENV_SERVICENAME",
			want: "env.serviceName",
		},
		{
			name: "descends through nested maps",
			raw:  "ENV_LOG_LEVEL",
			want: "env.log.level",
		},
		{
			name: "matches mixed-case acronym keys",
			raw:  "JWT_ACCESSTTL",
			want: "jwt.accessTTL",
		},
		{
			name: "keeps unknown segments lowercased",
			raw:  "JWT_SECRET",
			want: "jwt.secret",
		},
		{
			name: "unknown root stays verbatim",
			raw:  "SOMETHING_ELSE",
			want: "something.else",
		},
		{
			name: "stops canonicalizing below unknown segment",
			raw:  "POSTGRES_UNKNOWN_SSLMODE",
			want: "postgres.unknown.sslmode",
		},
		{
			name: "skips empty segments from doubled underscores",
			raw:  "UPLOAD__MAXFILESIZE",
			want: "upload.maxFileSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := canonicalizeEnvKey(tt.raw, existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxopenconns", normalizeToken("max_open_conns"))
	assert.Equal(t, "accessttl", normalizeToken("accessTTL"))
	assert.Equal(t, "", normalizeToken("___"))
}
