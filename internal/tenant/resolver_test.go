package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cfg := Config{
		BaseDomain:    "platterng.com",
		PreviewDomain: "vercel.app",
	}

	tests := []struct {
		name string
		url  string
		host string
		want string
	}{
		{
			name: "localhost subdomain from url",
			url:  "http://bistro.localhost:3000/menu",
			host: "bistro.localhost:3000",
			want: "bistro",
		},
		{
			name: "localhost subdomain from host header fallback",
			url:  "http://127.0.0.1:3000/",
			host: "bistro.localhost:3000",
			want: "bistro",
		},
		{
			name: "bare localhost has no tenant",
			url:  "http://localhost:3000/",
			host: "localhost:3000",
			want: "",
		},
		{
			name: "production subdomain",
			url:  "https://sub.platterng.com/menu",
			host: "sub.platterng.com",
			want: "sub",
		},
		{
			name: "bare base domain",
			url:  "https://platterng.com/",
			host: "platterng.com",
			want: "",
		},
		{
			name: "www is the marketing root",
			url:  "https://www.platterng.com/",
			host: "www.platterng.com",
			want: "",
		},
		{
			name: "app is reserved",
			url:  "https://app.platterng.com/",
			host: "app.platterng.com",
			want: "",
		},
		{
			name: "host with port",
			url:  "https://sub.platterng.com:8443/",
			host: "sub.platterng.com:8443",
			want: "sub",
		},
		{
			name: "localhost in the query string does not trip the dev branch",
			url:  "https://sub.platterng.com/menu?ref=localhost",
			host: "sub.platterng.com",
			want: "sub",
		},
		{
			name: "preview deployment",
			url:  "https://bistro.platter-guest.vercel.app/",
			host: "bistro.platter-guest.vercel.app",
			want: "bistro",
		},
		{
			name: "bare preview domain",
			url:  "https://vercel.app/",
			host: "vercel.app",
			want: "",
		},
		{
			name: "unrecognized host",
			url:  "https://example.org/",
			host: "example.org",
			want: "",
		},
		{
			name: "empty host",
			url:  "",
			host: "",
			want: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Resolve(testCase.url, testCase.host, cfg))
		})
	}
}

func TestResolveProductionEnvDisablesLocalhost(t *testing.T) {
	cfg := Config{Env: "production", BaseDomain: "platterng.com"}

	assert.Equal(t, "", Resolve("http://bistro.localhost:3000/menu", "bistro.localhost:3000", cfg))
	assert.Equal(t, "sub", Resolve("https://sub.platterng.com/?ref=localhost", "sub.platterng.com", cfg))
}

func TestResolveIsDeterministic(t *testing.T) {
	cfg := Config{BaseDomain: "platterng.com"}
	first := Resolve("https://sub.platterng.com/", "sub.platterng.com", cfg)
	second := Resolve("https://sub.platterng.com/", "sub.platterng.com", cfg)
	assert.Equal(t, first, second)
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		wantID   string
		wantName string
	}{
		{
			name:     "id and hyphenated name",
			segment:  "507f1f77bcf86cd799439011-Table-12",
			wantID:   "507F1F77BCF86CD799439011",
			wantName: "Table-12",
		},
		{
			name:     "id only",
			segment:  "a6",
			wantID:   "A6",
			wantName: "",
		},
		{
			name:     "empty segment",
			segment:  "",
			wantID:   "",
			wantName: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			table := ParseTable(testCase.segment)
			assert.Equal(t, testCase.wantID, table.ID)
			assert.Equal(t, testCase.wantName, table.Name)
		})
	}
}
