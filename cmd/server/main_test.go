package main

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServe_ReturnsListenError(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:-1", ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- serve(srv, make(chan os.Signal), zap.NewNop()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after a listen failure")
	}
}

func TestServe_ShutsDownOnSignal(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}
	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGTERM

	require.NoError(t, serve(srv, stop, zap.NewNop()))
}
