package resilience

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"booknow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLog_EvictsOldest(t *testing.T) {
	l := NewErrorLog(3)
	for i := 0; i < 5; i++ {
		l.Add(Entry{Message: fmt.Sprintf("m%d", i), Level: "INFO", Category: CategorySystem})
	}

	assert.Equal(t, 3, l.Len())
	recent := l.Recent(10, "", slog.LevelDebug)
	require.Len(t, recent, 3)
	assert.Equal(t, "m4", recent[0].Message)
	assert.Equal(t, "m2", recent[2].Message)
}

func TestErrorLog_RecentFilters(t *testing.T) {
	l := NewErrorLog(10)
	l.Add(Entry{Message: "a", Level: "ERROR", Category: CategoryDatabase})
	l.Add(Entry{Message: "b", Level: "INFO", Category: CategoryDatabase})
	l.Add(Entry{Message: "c", Level: "ERROR", Category: CategoryNetwork})

	db := l.Recent(10, CategoryDatabase, slog.LevelDebug)
	assert.Len(t, db, 2)

	errs := l.Recent(10, "", slog.LevelError)
	assert.Len(t, errs, 2)

	assert.Equal(t, map[Category]int{CategoryDatabase: 2, CategoryNetwork: 1}, l.CountByCategory())

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestHandler_RecordsAndMirrors(t *testing.T) {
	var buf bytes.Buffer
	ring := NewErrorLog(10)
	logger := slog.New(NewHandler(slog.NewTextHandler(&buf, nil), ring))

	logger.With(slog.String("user_id", "u1")).Error("Failed to insert referral",
		slog.Any("error", errors.New("duplicate key value violates unique constraint")))
	logger.Info("Referral recorded", CategoryBusinessLogic.Attr())

	assert.Contains(t, buf.String(), "Failed to insert referral")
	require.Equal(t, 2, ring.Len())

	entries := ring.Recent(2, "", slog.LevelDebug)
	assert.Equal(t, CategoryBusinessLogic, entries[0].Category)
	assert.Equal(t, CategoryDatabase, entries[1].Category)
	assert.Equal(t, "u1", entries[1].Context["user_id"])
	assert.NotContains(t, entries[0].Context, CategoryKey)
}

func TestHandler_RespectsLevel(t *testing.T) {
	ring := NewErrorLog(10)
	logger := slog.New(NewHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}), ring))

	logger.InfoContext(context.Background(), "ignored")
	logger.Warn("kept")

	assert.Equal(t, 1, ring.Len())
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		msg  string
		want Category
	}{
		{"invalid token signature", CategoryAuthentication},
		{"permission denied for relation users", CategoryAuthorization},
		{"validation failed on field email", CategoryValidation},
		{"ERROR: deadlock detected (SQLSTATE 40P01)", CategoryDatabase},
		{"dial tcp: connection refused", CategoryNetwork},
		{"notification endpoint returned status code 502", CategoryExternalService},
		{"milestone already rewarded", CategoryBusinessLogic},
		{"something odd", CategorySystem},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.msg))
		})
	}
	assert.Equal(t, CategorySystem, CategorizeError(nil))
}
