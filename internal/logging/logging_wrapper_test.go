package logging

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type pingOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func newMiddlewareAPI(t *testing.T) (humatest.TestAPI, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Message = "pong"
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "boom",
		Method:      http.MethodGet,
		Path:        "/boom",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		return nil, huma.NewError(http.StatusInternalServerError, "failed", errors.New("backend down"))
	})

	return api, hook
}

func lastEntry(hook *test.Hook) *logrus.Entry {
	entries := hook.AllEntries()
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1]
}

func TestMiddleware_SuccessEmitsComplete(t *testing.T) {
	api, hook := newMiddlewareAPI(t)

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	entry := lastEntry(hook)
	assert.NotNil(t, entry)
	assert.Equal(t, "Handler.ping.Complete", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Contains(t, entry.Data, "duration")
}

func TestMiddleware_ServerErrorEmitsError(t *testing.T) {
	api, hook := newMiddlewareAPI(t)

	resp := api.Get("/boom")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	entry := lastEntry(hook)
	assert.NotNil(t, entry)
	assert.Equal(t, "Handler.boom.Error", entry.Message)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])

	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "Handler.boom.Complete", e.Message)
	}
}

func TestMiddleware_ClientErrorStillCompletes(t *testing.T) {
	api, hook := newMiddlewareAPI(t)

	resp := api.Get("/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	_ = resp

	// 4xx outcomes are not server failures; when the router reaches an
	// operation the middleware flushes Complete for them.
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, e.Level)
	}
}
