package campfin_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfin-io/campfin/pkg/campfin"
)

var errInterceptorRejected = errors.New("rejected")

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	chain := campfin.NewInterceptorChain()

	var calls []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *campfin.Request) error {
		calls = append(calls, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *campfin.Request) error {
		calls = append(calls, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &campfin.Request{Method: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestInterceptorChain_RequestError(t *testing.T) {
	t.Parallel()

	chain := campfin.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *campfin.Request) error {
		return errInterceptorRejected
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &campfin.Request{Method: http.MethodGet})
	require.ErrorIs(t, err, errInterceptorRejected)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := campfin.NewInterceptorChain()

	var seenStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *campfin.Request, resp *campfin.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&campfin.Request{Method: http.MethodGet},
		&campfin.Response{StatusCode: http.StatusOK})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, seenStatus)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := campfin.HeaderInterceptor(map[string]string{
		"X-Request-Source": "reporting-pipeline",
	})

	req := &campfin.Request{Method: http.MethodGet}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "reporting-pipeline", req.Headers.Get("X-Request-Source"))
}
