// Package shortcode derives short codes from a seed and checks them
// against the link existence filter.
package shortcode

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avc-dev/shortlink/internal/bloom"
	"github.com/avc-dev/shortlink/internal/clock"
	"github.com/cespare/xxhash/v2"
	"github.com/jxskiss/base62"
)

const (
	// MaxAttempts bounds the collision retries of one Generate call.
	MaxAttempts = 10
	// CodeLength is the length of every generated code.
	CodeLength = 7

	// codes are base-62 numbers in [62^6, 62^7), i.e. exactly seven digits
	minCode   uint64 = 56_800_235_584
	codeRange uint64 = 3_521_614_606_208 - minCode
)

// ErrGenerationExhausted is returned when every attempt hit the filter.
// It is not retried internally; the caller may resubmit.
var ErrGenerationExhausted = errors.New("short code generation exhausted")

// Generator produces codes that the link filter reports as absent.
type Generator struct {
	filter      bloom.Filter
	clk         clock.Clock
	maxAttempts int
}

// NewGenerator creates a Generator checking candidates against filter.
func NewGenerator(filter bloom.Filter, clk clock.Clock) *Generator {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Generator{
		filter:      filter,
		clk:         clk,
		maxAttempts: MaxAttempts,
	}
}

// Generate derives a code from seed (typically the destination URL) and
// the current time. A candidate whose full short URL the filter may
// already contain is discarded and the timestamp component is bumped.
func (g *Generator) Generate(ctx context.Context, seed, domain string) (string, error) {
	stamp := g.clk.Now().UnixMilli()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := Encode(seed + strconv.FormatInt(stamp+int64(attempt), 10))

		taken, err := g.filter.MightContain(ctx, FullShortURL(domain, code))
		if err != nil {
			return "", fmt.Errorf("failed to check candidate code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, g.maxAttempts)
}

// Encode hashes input and reduces it to a CodeLength base-62 code.
func Encode(input string) string {
	n := xxhash.Sum64String(input)%codeRange + minCode
	return string(base62.FormatInt(int64(n)))
}

// FullShortURL is the unique key of a link: domain + "/" + code.
func FullShortURL(domain, code string) string {
	return domain + "/" + code
}
