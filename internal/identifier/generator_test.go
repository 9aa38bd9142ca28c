package identifier

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func neverTaken(context.Context, string) (bool, error) {
	return false, nil
}

func TestGenerateFormats(t *testing.T) {
	g := NewGenerator()
	ctx := context.Background()

	cases := []struct {
		kind    Kind
		pattern string
	}{
		{KindUser, `^[1-9][0-9]{2}$`},
		{KindBusiness, `^B[0-9]{4}$`},
		{KindJob, `^J[0-9]{6}$`},
	}

	for _, tc := range cases {
		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 100; i++ {
			id, err := g.Generate(ctx, tc.kind, neverTaken)
			require.NoError(t, err)
			assert.Regexp(t, re, id)
		}
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	g := NewGenerator()
	_, err := g.Generate(context.Background(), Kind("team"), neverTaken)
	assert.Error(t, err)
}

func TestGenerateAvoidsTakenIdentifiers(t *testing.T) {
	g := NewGenerator()
	ctx := context.Background()

	taken := map[string]bool{}
	exists := func(_ context.Context, publicID string) (bool, error) {
		return taken[publicID], nil
	}

	// Mark every generated identifier as taken and verify the next draw never
	// repeats one. The job namespace is large enough that a thousand calls
	// stay far from exhaustion.
	for i := 0; i < 1000; i++ {
		id, err := g.Generate(ctx, KindJob, exists)
		require.NoError(t, err)
		require.False(t, taken[id], "generator returned an identifier already in use: %s", id)
		taken[id] = true
	}
	assert.Len(t, taken, 1000)

	// The small user namespace behaves the same while more than half full.
	for i := 0; i < 500; i++ {
		id, err := g.Generate(ctx, KindUser, exists)
		require.NoError(t, err)
		require.False(t, taken[id], "generator returned an identifier already in use: %s", id)
		taken[id] = true
	}
}

func TestGenerateExhaustionReturnsServiceError(t *testing.T) {
	g := NewGenerator()

	allTaken := func(context.Context, string) (bool, error) { return true, nil }
	_, err := g.Generate(context.Background(), KindUser, allTaken)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ID_SPACE_EXHAUSTED", domainErr.Code)
	assert.Equal(t, 503, domainErr.HTTPStatus)
}

func TestGenerateStopsOnStoreError(t *testing.T) {
	g := NewGenerator()

	storeErr := errors.New("connection reset")
	calls := 0
	failing := func(context.Context, string) (bool, error) {
		calls++
		return false, storeErr
	}

	_, err := g.Generate(context.Background(), KindJob, failing)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, calls)
}

func TestGenerateHonorsContextCancellation(t *testing.T) {
	g := NewGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, KindUser, neverTaken)
	assert.ErrorIs(t, err, context.Canceled)
}
