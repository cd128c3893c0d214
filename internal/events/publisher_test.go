package events

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/profile-service/internal/models"
)

func TestNewProfileEvent(t *testing.T) {
	user := &models.User{UserID: 7, Email: "jane@x.com", UserType: models.TypeStudent}

	ev := NewProfileEvent(EventProfileCreated, user)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, EventProfileCreated, ev.EventType)
	assert.Equal(t, uint(7), ev.UserID)
	assert.Equal(t, "jane@x.com", ev.Email)
	assert.Equal(t, models.TypeStudent, ev.UserType)
	assert.False(t, ev.OccurredAt.IsZero())

	other := NewProfileEvent(EventProfileDeleted, user)
	assert.NotEqual(t, ev.EventID, other.EventID)
}

func TestGoChannelPublisher_Publish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pub := NewGoChannelPublisher(logger)
	defer pub.Close()

	user := &models.User{UserID: 1, Email: "a@x.com", UserType: models.TypeTeacher}
	err := pub.PublishProfileEvent(context.Background(), NewProfileEvent(EventProfileUpdated, user))
	assert.NoError(t, err)
}

func TestMockEventPublisher_Records(t *testing.T) {
	mock := NewMockEventPublisher(nil)

	user := &models.User{UserID: 3, Email: "c@x.com"}
	require.NoError(t, mock.PublishProfileEvent(context.Background(), NewProfileEvent(EventProfileCreated, user)))
	require.NoError(t, mock.PublishProfileEvent(context.Background(), NewProfileEvent(EventProfileDeleted, user)))

	evs := mock.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, EventProfileCreated, evs[0].EventType)
	assert.Equal(t, EventProfileDeleted, evs[1].EventType)
}
