package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var v struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"5s"}`), &v))
	require.Equal(t, 5*time.Second, v.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":1000000000}`), &v))
	require.Equal(t, time.Second, v.D.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"d":"nope"}`), &v))
	require.ErrorIs(t, json.Unmarshal([]byte(`{"d":true}`), &v), ErrInvalidDuration)
}

func TestDurationMarshal(t *testing.T) {
	b, err := json.Marshal(Duration{2 * time.Minute})
	require.NoError(t, err)
	require.JSONEq(t, `"2m0s"`, string(b))
}
