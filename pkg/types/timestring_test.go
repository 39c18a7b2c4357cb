package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "08:20", want: "08:20"},
		{name: "postgres time", input: "12:40:00", want: "12:40"},
		{name: "spaces trimmed", input: " 19:40 ", want: "19:40"},
		{name: "single digit hour", input: "8:20", wantErr: true},
		{name: "out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := MustTimeString("11:40")

	next, err := start.AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, "12:00", next.String())
	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))

	_, err = MustTimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Time TimeString `json:"time"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"time":"10:20"}`), &payload))
	assert.Equal(t, "10:20", payload.Time.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"10:20"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"time":"10h20"}`), &payload))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:40"))
	assert.Equal(t, "09:40", ts.String())

	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 7, 22, 14, 20, 0, 0, time.UTC)))
	assert.Equal(t, "14:20", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC)
	got := MustTimeString("08:20").On(date)
	assert.Equal(t, time.Date(2025, 7, 22, 8, 20, 0, 0, time.UTC), got)
}
