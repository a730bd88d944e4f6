package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/logger"
)

func TestDiscordSender_CanSend(t *testing.T) {
	log := logger.GetLogger("test")

	sender := NewDiscordSender(log, config.NotificationsConfig{})
	assert.False(t, sender.CanSend())

	sender = NewDiscordSender(log, config.NotificationsConfig{
		Service: config.NotificationService{Discord: "https://example.com/webhook"},
	})
	assert.True(t, sender.CanSend())
	assert.Equal(t, "discord", sender.Name())
}

func TestDiscordSender_Send(t *testing.T) {
	var messages []DiscordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var msg DiscordMessage
		require.NoError(t, json.Unmarshal(body, &msg))
		messages = append(messages, msg)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := NewDiscordSender(logger.GetLogger("test"), config.NotificationsConfig{
		Detailed: true,
		Service:  config.NotificationService{Discord: server.URL},
	})

	fields := []Field{
		sender.BuildField(ActionDuplicate, BuildOptions{
			DuplicatePath: "/data/b.txt",
			OriginalPath:  "/data/a.txt",
			Size:          1024,
		}),
	}

	err := sender.Send("Duplicate scan", "Found 1 duplicates", 3*time.Second, fields, false)
	require.NoError(t, err)

	require.Len(t, messages, 1)
	require.Len(t, messages[0].Embeds, 1)

	embed := messages[0].Embeds[0]
	assert.Equal(t, "Duplicate scan", embed.Title)
	assert.Equal(t, "Found 1 duplicates", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Value, "/data/b.txt is a duplicate of /data/a.txt")
}

func TestDiscordSender_SendDryRunTitle(t *testing.T) {
	var gotTitle string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg DiscordMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		gotTitle = msg.Embeds[0].Title
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := NewDiscordSender(logger.GetLogger("test"), config.NotificationsConfig{
		Service: config.NotificationService{Discord: server.URL},
	})

	require.NoError(t, sender.Send("Hash rename", "desc", time.Second, nil, true))
	assert.Equal(t, "Hash rename (Dry Run)", gotTitle)
}

func TestDiscordSender_SkipEmptyRun(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := NewDiscordSender(logger.GetLogger("test"), config.NotificationsConfig{
		SkipEmptyRun: true,
		Service:      config.NotificationService{Discord: server.URL},
	})

	require.NoError(t, sender.Send("Duplicate scan", "nothing", time.Second, nil, false))
	assert.Zero(t, calls)
}

func TestDiscordSender_SendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad webhook", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewDiscordSender(logger.GetLogger("test"), config.NotificationsConfig{
		Service: config.NotificationService{Discord: server.URL},
	})

	err := sender.Send("title", "desc", time.Second, nil, false)
	assert.Error(t, err)
}

func TestDiscordSender_BuildField(t *testing.T) {
	sender := NewDiscordSender(logger.GetLogger("test"), config.NotificationsConfig{})

	field := sender.BuildField(ActionRename, BuildOptions{
		OldName: "/data/old.txt",
		NewName: "3a7bd3e2.txt",
	})
	assert.Equal(t, "/data/old.txt", field.Name)
	assert.Contains(t, field.Value, "3a7bd3e2.txt")

	field = sender.BuildField(ActionFetch, BuildOptions{URL: "https://example.com/doc.pdf"})
	assert.Equal(t, "doc.pdf", field.Name)
}
