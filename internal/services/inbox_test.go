package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func msgAt(id, sender, receiver, text string, at time.Time) models.Message {
	return models.Message{ID: id, SenderID: sender, ReceiverID: receiver, Text: text, CreatedAt: at}
}

func TestBuildConversationSummaries_GroupsBothDirections(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	messages := []models.Message{
		msgAt("m1", "me", "b", "first", base),
		msgAt("m2", "b", "me", "reply", base.Add(time.Minute)),
		msgAt("m3", "me", "b", "latest", base.Add(2*time.Minute)),
	}

	summaries := BuildConversationSummaries("me", messages, map[string]models.User{
		"b": {ID: "b", FullName: "Bella", Email: "b@example.com"},
	})

	// A→B and B→A collapse into a single conversation keyed on the pair
	assert.Len(t, summaries, 1)
	assert.Equal(t, "b", summaries[0].UserID)
	assert.Equal(t, "Bella", summaries[0].FullName)
	assert.Equal(t, "latest", summaries[0].LastMessage.Text)
	assert.Equal(t, "me", summaries[0].LastMessage.SenderID)
}

func TestBuildConversationSummaries_RecencyOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	messages := []models.Message{
		msgAt("m1", "me", "b", "old", base),
		msgAt("m2", "c", "me", "mid", base.Add(time.Hour)),
		msgAt("m3", "b", "me", "new", base.Add(2*time.Hour)),
	}

	summaries := BuildConversationSummaries("me", messages, nil)

	assert.Len(t, summaries, 2)
	assert.Equal(t, "b", summaries[0].UserID)
	assert.Equal(t, "new", summaries[0].LastMessage.Text)
	assert.Equal(t, "c", summaries[1].UserID)
}

func TestBuildConversationSummaries_IgnoresUnrelated(t *testing.T) {
	now := time.Now()

	messages := []models.Message{
		msgAt("m1", "x", "y", "not mine", now),
		msgAt("m2", "me", "b", "mine", now),
	}

	summaries := BuildConversationSummaries("me", messages, nil)

	assert.Len(t, summaries, 1)
	assert.Equal(t, "b", summaries[0].UserID)
}

func TestBuildConversationSummaries_SelfMessage(t *testing.T) {
	now := time.Now()

	summaries := BuildConversationSummaries("me", []models.Message{
		msgAt("m1", "me", "me", "note to self", now),
	}, map[string]models.User{})

	assert.Len(t, summaries, 1)
	assert.Equal(t, "me", summaries[0].UserID)
	assert.Equal(t, "note to self", summaries[0].LastMessage.Text)
}

func TestBuildConversationSummaries_Empty(t *testing.T) {
	summaries := BuildConversationSummaries("me", nil, nil)
	assert.Empty(t, summaries)
}
