package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sitewalk/inspection-api/internal/domain/vision"
)

// CachedClient wraps a vision client with an LRU of past results, keyed by
// the question, language and a digest of the image bytes. A retry with the
// exact same photos answers from cache instead of re-billing the provider.
// Errors and quota failures are never cached.
type CachedClient struct {
	inner vision.Client
	cache *lru.Cache[string, vision.Result]
}

func NewCachedClient(inner vision.Client, size int) (*CachedClient, error) {
	if size <= 0 {
		size = 128
	}
	c, err := lru.New[string, vision.Result](size)
	if err != nil {
		return nil, err
	}
	return &CachedClient{inner: inner, cache: c}, nil
}

func (c *CachedClient) Analyze(ctx context.Context, req vision.Request) (vision.Result, error) {
	key := cacheKey(req)
	if res, ok := c.cache.Get(key); ok {
		return res, nil
	}
	res, err := c.inner.Analyze(ctx, req)
	if err != nil {
		return vision.Result{}, err
	}
	c.cache.Add(key, res)
	return res, nil
}

func cacheKey(req vision.Request) string {
	h := sha256.New()
	h.Write([]byte(req.Question))
	h.Write([]byte{0})
	h.Write([]byte(req.Language))
	for _, img := range req.Images {
		h.Write([]byte{0})
		h.Write(img)
	}
	return hex.EncodeToString(h.Sum(nil))
}
