package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok": true, "result": {"message_id": 99, "chat": {"id": 5}}}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("test-token", srv.URL)
	msg, err := c.SendMessage(context.Background(), 5, "hello *world*", nil)
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "hello *world*", gotPayload["text"])
	assert.Equal(t, "Markdown", gotPayload["parse_mode"])
	assert.NotContains(t, gotPayload, "reply_markup")
	assert.Equal(t, int64(99), msg.MessageID)
}

func TestSendMessageWithKeyboard(t *testing.T) {
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok": true, "result": {"message_id": 1}}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	keyboard := &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{{
			{Text: "Save", CallbackData: "tasks:save:abc"},
		}},
	}
	_, err := c.SendMessage(context.Background(), 5, "confirm?", keyboard)
	require.NoError(t, err)

	markup, ok := gotPayload["reply_markup"].(map[string]interface{})
	require.True(t, ok)
	rows, ok := markup["inline_keyboard"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)
}

func TestAPIErrorSurfacesDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	_, err := c.SendMessage(context.Background(), 1, "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	_, err := c.SendMessage(context.Background(), 1, "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestGetUpdates(t *testing.T) {
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok": true, "result": [
			{"update_id": 10, "message": {"message_id": 1, "from": {"id": 42}, "chat": {"id": 42}, "text": "hi"}},
			{"update_id": 11, "callback_query": {"id": "cb1", "from": {"id": 42}, "data": "tasks:save:abc"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	updates, err := c.GetUpdates(context.Background(), 10, 25)
	require.NoError(t, err)

	assert.Equal(t, float64(10), gotPayload["offset"])
	assert.Equal(t, float64(25), gotPayload["timeout"])

	require.Len(t, updates, 2)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "hi", updates[0].Message.Text)
	require.NotNil(t, updates[1].CallbackQuery)
	assert.Equal(t, "tasks:save:abc", updates[1].CallbackQuery.Data)
}

func TestGetUpdatesZeroOffsetOmitted(t *testing.T) {
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok": true, "result": []}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	_, err := c.GetUpdates(context.Background(), 0, 25)
	require.NoError(t, err)
	assert.NotContains(t, gotPayload, "offset")
}

func TestDownloadVoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bott/getFile":
			_, _ = w.Write([]byte(`{"ok": true, "result": {"file_id": "voice-1", "file_path": "voice/file_7.oga"}}`))
		case "/file/bott/voice/file_7.oga":
			_, _ = w.Write([]byte("OGGDATA"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	data, err := c.DownloadVoice(context.Background(), "voice-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("OGGDATA"), data)
}

func TestDownloadVoiceMissingPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true, "result": {"file_id": "voice-1"}}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	_, err := c.DownloadVoice(context.Background(), "voice-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file path")
}

func TestAnswerCallback(t *testing.T) {
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok": true, "result": true}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIRoot("t", srv.URL)
	require.NoError(t, c.AnswerCallback(context.Background(), "cb1", "Saved!", true))

	assert.Equal(t, "cb1", gotPayload["callback_query_id"])
	assert.Equal(t, "Saved!", gotPayload["text"])
	assert.Equal(t, true, gotPayload["show_alert"])
}
