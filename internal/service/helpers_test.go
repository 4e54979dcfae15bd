package service_test

import (
	"testing"
	"time"

	"afterReach/internal/service"

	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, date string) service.Clock {
	t.Helper()
	now, err := time.Parse("2006-01-02 15:04", date+" 12:00")
	require.NoError(t, err)
	return func() time.Time { return now }
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, service.HasCode(err, code), "want %s, got %v", code, err)
}
