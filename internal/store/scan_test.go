package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{name: "native", src: want},
		{name: "current_timestamp text", src: "2026-03-14 15:09:26"},
		{name: "go-sqlite3 text", src: []byte("2026-03-14 15:09:26+00:00")},
		{name: "rfc3339", src: "2026-03-14T15:09:26Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, timestamp{&got}.Scan(tt.src))
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}
}

func TestTimestamp_Scan_Invalid(t *testing.T) {
	var got time.Time
	assert.Error(t, timestamp{&got}.Scan("yesterday"))
	assert.Error(t, timestamp{&got}.Scan(42))
}
