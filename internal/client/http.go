package client

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewLimiter builds the outbound pacing limiter; a non-positive rate disables it.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// do waits for the limiter and executes req, bounded by the context deadline
// when present and by timeout otherwise.
func do(ctx context.Context, hc *fasthttp.Client, limiter *rate.Limiter, timeout time.Duration, req *fasthttp.Request, resp *fasthttp.Response) error {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		return hc.DoDeadline(req, resp, deadline)
	}
	return hc.DoTimeout(req, resp, timeout)
}
