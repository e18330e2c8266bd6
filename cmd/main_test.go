package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRun_StartFailureIsReturned(t *testing.T) {
	serverErr := make(chan error, 1)
	serverErr <- errors.New("listen tcp :8000: bind: address already in use")

	err := run(context.Background(), echo.New(), serverErr, time.Second)

	assert.EqualError(t, err, "listen tcp :8000: bind: address already in use")
}

func TestRun_SignalShutsDownCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, echo.New(), make(chan error), time.Second)

	assert.NoError(t, err)
}

func TestRun_ClosedServerIsNotAnError(t *testing.T) {
	serverErr := make(chan error)
	close(serverErr)

	assert.NoError(t, run(context.Background(), echo.New(), serverErr, time.Second))
}
