package checkin

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is one normalized webhook message. Every field is populated;
// malformed elements fall back to placeholders instead of failing the batch.
type Message struct {
	Text      string
	UserID    string
	UserName  string
	Email     *string
	MessageID string
	Timestamp time.Time
}

// Wire shapes. The batch and single-message forms follow the Graph chat
// message layout; the flat form is the legacy integration format.
type chatMessage struct {
	ID              string       `json:"id"`
	CreatedDateTime string       `json:"createdDateTime"`
	Body            *messageBody `json:"body"`
	From            *messageFrom `json:"from"`
	UserEmail       string       `json:"userEmail"`
}

type messageBody struct {
	Content string `json:"content"`
}

type messageFrom struct {
	User *messageUser `json:"user"`
}

type messageUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// payloadEnvelope holds the superset of fields across the three accepted
// payload shapes; dispatch is structural.
type payloadEnvelope struct {
	// Shape A: batch ("When a new message is added to a chat or channel")
	Value []chatMessage `json:"value"`

	// Shape B: the payload itself is a single message object
	ID              string       `json:"id"`
	CreatedDateTime string       `json:"createdDateTime"`
	Body            *messageBody `json:"body"`
	From            *messageFrom `json:"from"`
	UserEmail       string       `json:"userEmail"`

	// Shape C: flat legacy format
	MessageContent string `json:"messageContent"`
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	MessageID      string `json:"messageId"`
	Timestamp      string `json:"timestamp"`
}

// NormalizeMessages parses a webhook body into normalized messages.
// now supplies the receipt time used when a message carries no usable
// timestamp. The returned error wraps ErrInvalidPayload (with a rendering
// of the received body, for operator debugging) when the body is
// unparseable, matches no accepted shape, or yields no messages.
func NormalizeMessages(body []byte, now time.Time) ([]Message, error) {
	var env payloadEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: received %q", ErrInvalidPayload, string(body))
	}

	var raw []chatMessage
	switch {
	case env.Value != nil:
		raw = env.Value
	case env.Body != nil && env.Body.Content != "":
		raw = []chatMessage{{
			ID:              env.ID,
			CreatedDateTime: env.CreatedDateTime,
			Body:            env.Body,
			From:            env.From,
			UserEmail:       env.UserEmail,
		}}
	case env.MessageContent != "":
		raw = []chatMessage{{
			ID:              env.MessageID,
			CreatedDateTime: env.Timestamp,
			Body:            &messageBody{Content: env.MessageContent},
			From:            &messageFrom{User: &messageUser{ID: env.UserID, DisplayName: env.UserName}},
			UserEmail:       env.UserEmail,
		}}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: received %q", ErrInvalidPayload, string(body))
	}

	messages := make([]Message, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, normalizeMessage(m, now))
	}
	return messages, nil
}

// normalizeMessage extracts fields defensively: one malformed element must
// never fail the whole batch.
func normalizeMessage(m chatMessage, now time.Time) Message {
	msg := Message{
		Text:      "",
		UserID:    UnknownUserID,
		UserName:  "Unknown User",
		MessageID: m.ID,
		Timestamp: now,
	}

	if m.Body != nil {
		msg.Text = m.Body.Content
	}
	if m.From != nil && m.From.User != nil {
		if m.From.User.ID != "" {
			msg.UserID = m.From.User.ID
		}
		if m.From.User.DisplayName != "" {
			msg.UserName = m.From.User.DisplayName
		}
	}
	if m.UserEmail != "" {
		email := m.UserEmail
		msg.Email = &email
	}
	if msg.MessageID == "" {
		msg.MessageID = "manual-" + uuid.NewString()
	}
	if m.CreatedDateTime != "" {
		if ts, err := time.Parse(time.RFC3339, m.CreatedDateTime); err == nil {
			msg.Timestamp = ts
		}
	}

	return msg
}
