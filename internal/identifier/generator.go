package identifier

import (
	"context"
	"fmt"
	"math/rand"

	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// Kind selects the identifier namespace and format.
type Kind string

const (
	KindUser     Kind = "user"     // 3-digit decimal, 100-999
	KindBusiness Kind = "business" // "B" + 4 digits, B0000-B9999
	KindJob      Kind = "job"      // "J" + 6 digits, J000000-J999999
)

// ExistsFunc reports whether a candidate identifier is already taken in its
// namespace. Backed by the persistence layer's existsByPublicId lookup.
type ExistsFunc func(ctx context.Context, publicID string) (bool, error)

// maxAttempts bounds the rejection-sampling loop. The namespaces are large
// relative to expected population, so hitting the cap means the namespace is
// effectively full and the caller should see a service-level failure rather
// than an endless loop.
const maxAttempts = 10

// Generator produces collision-free public identifiers by drawing uniformly
// from the kind's range and re-drawing while the store reports the candidate
// as taken. It never reserves an id; the store's uniqueness constraint is the
// final arbiter under concurrent registration.
type Generator struct {
	intN func(n int) int
}

// NewGenerator builds a generator using the shared math/rand source.
func NewGenerator() *Generator {
	return &Generator{intN: rand.Intn}
}

// Generate draws identifiers until one is free or the attempt cap is hit.
func (g *Generator) Generate(ctx context.Context, kind Kind, taken ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := g.draw(kind)
		if err != nil {
			return "", err
		}

		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
	}
	return "", apperrors.NewResourceExhausted(string(kind))
}

func (g *Generator) draw(kind Kind) (string, error) {
	switch kind {
	case KindUser:
		return fmt.Sprintf("%d", 100+g.intN(900)), nil
	case KindBusiness:
		return fmt.Sprintf("B%04d", g.intN(10000)), nil
	case KindJob:
		return fmt.Sprintf("J%06d", g.intN(1000000)), nil
	default:
		return "", fmt.Errorf("unknown identifier kind %q", kind)
	}
}
