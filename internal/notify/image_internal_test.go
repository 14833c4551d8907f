package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw     string
		wantExt string
	}{
		"png keeps extension":    {raw: "https://example.com/a/icon.png", wantExt: ".png"},
		"uppercase is lowered":   {raw: "https://example.com/ICON.JPG", wantExt: ".jpg"},
		"query is not extension": {raw: "https://example.com/img?id=3", wantExt: ""},
		"unknown extension":      {raw: "https://example.com/file.exe", wantExt: ""},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.raw)
			require.NoError(t, err)

			key := cacheKey(u)
			assert.Len(t, strings.TrimSuffix(key, tt.wantExt), 64)
			assert.True(t, strings.HasSuffix(key, tt.wantExt))
		})
	}
}

func TestCacheKey_DistinctURLs(t *testing.T) {
	t.Parallel()

	a, _ := url.Parse("https://example.com/a.png")
	b, _ := url.Parse("https://example.com/b.png")
	assert.NotEqual(t, cacheKey(a), cacheKey(b))
	assert.Equal(t, cacheKey(a), cacheKey(a))
}
