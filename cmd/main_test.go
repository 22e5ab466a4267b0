package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/twprice/config"
	"github.com/guttosm/twprice/internal/domain/models"
	"github.com/guttosm/twprice/internal/service"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

type fixedResolver map[string]string

func (f fixedResolver) Resolve(_ context.Context, codes []string) map[string]models.PriceResult {
	out := make(map[string]models.PriceResult)
	for _, c := range codes {
		if p, ok := f[c]; ok {
			out[c] = models.PriceResult{Code: c, Price: decimal.RequireFromString(p), Found: true}
			continue
		}
		out[c] = models.Unresolved(c)
	}
	return out
}

func TestWriteQuotes(t *testing.T) {
	var buf bytes.Buffer
	err := writeQuotes(context.Background(), &buf, fixedResolver{"2330": "580.12"}, []string{"2330", "0050"}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2330": 580.12, "0050": null}`, buf.String())
}

func TestQuoteCommand(t *testing.T) {
	old := resolverFactory
	resolverFactory = func(config.Config) service.PriceResolver { return fixedResolver{"0050": "190.5"} }
	t.Cleanup(func() { resolverFactory = old })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"quote", "--pretty", "0050"})
	require.NoError(t, root.Execute())
	assert.JSONEq(t, `{"0050": 190.5}`, out.String())
}

func TestQuoteCommand_RequiresCodes(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"quote"})
	assert.Error(t, root.Execute())
}
