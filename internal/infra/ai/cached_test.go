package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

type countingClient struct {
	calls int
	res   vision.Result
	err   error
}

func (c *countingClient) Analyze(_ context.Context, _ vision.Request) (vision.Result, error) {
	c.calls++
	return c.res, c.err
}

func TestCachedClientServesRepeatFromCache(t *testing.T) {
	inner := &countingClient{res: vision.Result{Answer: "Looks good.", Sufficient: true}}
	c, err := NewCachedClient(inner, 8)
	require.NoError(t, err)

	req := vision.Request{
		Images:   [][]byte{[]byte("jpeg-bytes")},
		Question: "Inspect the entrance door.",
		Language: i18n.LangEN,
	}

	res, err := c.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, inner.res, res)
	require.Equal(t, 1, inner.calls)

	res, err = c.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, inner.res, res)
	require.Equal(t, 1, inner.calls)
}

func TestCachedClientDistinguishesImages(t *testing.T) {
	inner := &countingClient{res: vision.Result{Answer: "ok", Sufficient: true}}
	c, err := NewCachedClient(inner, 8)
	require.NoError(t, err)

	base := vision.Request{Question: "q", Language: i18n.LangEN}

	first := base
	first.Images = [][]byte{[]byte("one")}
	second := base
	second.Images = [][]byte{[]byte("two")}

	_, err = c.Analyze(context.Background(), first)
	require.NoError(t, err)
	_, err = c.Analyze(context.Background(), second)
	require.NoError(t, err)
	require.Equal(t, 2, inner.calls)
}

func TestCachedClientNeverCachesErrors(t *testing.T) {
	inner := &countingClient{err: errors.New("transport down")}
	c, err := NewCachedClient(inner, 8)
	require.NoError(t, err)

	req := vision.Request{Images: [][]byte{[]byte("x")}, Question: "q", Language: i18n.LangEN}

	_, err = c.Analyze(context.Background(), req)
	require.Error(t, err)
	_, err = c.Analyze(context.Background(), req)
	require.Error(t, err)
	require.Equal(t, 2, inner.calls)

	// once the backend recovers the result is cached as usual
	inner.err = nil
	inner.res = vision.Result{Answer: "fine", Sufficient: true}
	_, err = c.Analyze(context.Background(), req)
	require.NoError(t, err)
	_, err = c.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 3, inner.calls)
}
