package checkin

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNormalizeMessages_BatchShape(t *testing.T) {
	body := `{"value":[
		{"body":{"content":"Working From Home today"},"from":{"user":{"id":"u1","displayName":"Alice"}},"id":"m1","createdDateTime":"2024-01-01T09:00:00Z"},
		{"body":{"content":"in office"},"from":{"user":{"id":"u2","displayName":"Bob"}},"userEmail":"bob@example.com","id":"m2","createdDateTime":"2024-01-01T09:05:00Z"}
	]}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "Working From Home today", messages[0].Text)
	assert.Equal(t, "u1", messages[0].UserID)
	assert.Equal(t, "Alice", messages[0].UserName)
	assert.Nil(t, messages[0].Email)
	assert.Equal(t, "m1", messages[0].MessageID)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), messages[0].Timestamp)

	require.NotNil(t, messages[1].Email)
	assert.Equal(t, "bob@example.com", *messages[1].Email)
}

func TestNormalizeMessages_SingleNestedShape(t *testing.T) {
	body := `{"body":{"content":"wfh"},"from":{"user":{"id":"u1","displayName":"Alice"}},"id":"m9"}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "wfh", messages[0].Text)
	assert.Equal(t, "m9", messages[0].MessageID)
	assert.Equal(t, testNow, messages[0].Timestamp, "missing createdDateTime falls back to receipt time")
}

func TestNormalizeMessages_FlatLegacyShape(t *testing.T) {
	body := `{"messageContent":"I'm in office","userId":"u2","userName":"Bob","messageId":"m2"}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "I'm in office", messages[0].Text)
	assert.Equal(t, "u2", messages[0].UserID)
	assert.Equal(t, "Bob", messages[0].UserName)
	assert.Equal(t, "m2", messages[0].MessageID)
}

func TestNormalizeMessages_DefensiveDefaults(t *testing.T) {
	// A batch element with nothing usable still normalizes; the batch never
	// fails over one malformed element.
	body := `{"value":[{}]}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Equal(t, "", msg.Text)
	assert.Equal(t, UnknownUserID, msg.UserID)
	assert.Equal(t, "Unknown User", msg.UserName)
	assert.Nil(t, msg.Email)
	assert.True(t, strings.HasPrefix(msg.MessageID, "manual-"), "synthesized message id")
	assert.Equal(t, testNow, msg.Timestamp)
}

func TestNormalizeMessages_SynthesizedIDsDistinct(t *testing.T) {
	body := `{"value":[{},{}]}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.NotEqual(t, messages[0].MessageID, messages[1].MessageID)
}

func TestNormalizeMessages_BadTimestampFallsBack(t *testing.T) {
	body := `{"value":[{"id":"m1","createdDateTime":"yesterday-ish"}]}`

	messages, err := NormalizeMessages([]byte(body), testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, messages[0].Timestamp)
}

func TestNormalizeMessages_InvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unrecognized shape", `{"hello":"world"}`},
		{"empty batch", `{"value":[]}`},
		{"not json", `this is not json`},
		{"empty nested content", `{"body":{"content":""}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NormalizeMessages([]byte(c.body), testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), "received", "diagnostic includes the payload rendering")
		})
	}
}
