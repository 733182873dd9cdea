// Package telegram is a minimal Bot API client: JSON calls over plain HTTP,
// no third-party wrapper.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultAPIRoot = "https://api.telegram.org"

type Client struct {
	token   string
	apiRoot string
	http    *http.Client
}

// NewClient creates a Bot API client for the given token
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		apiRoot: defaultAPIRoot,
		http:    http.DefaultClient,
	}
}

// NewClientWithAPIRoot creates a client against a non-standard API root,
// used by tests to point at a fake server
func NewClientWithAPIRoot(token, apiRoot string) *Client {
	c := NewClient(token)
	c.apiRoot = strings.TrimRight(apiRoot, "/")
	return c
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	url := c.apiRoot + "/bot" + c.token + "/" + method
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram api status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var base apiResponse
	if err := json.Unmarshal(respBody, &base); err != nil {
		return err
	}
	if !base.OK {
		return fmt.Errorf("telegram api error: %s", base.Description)
	}

	if out != nil {
		if err := json.Unmarshal(base.Result, out); err != nil {
			return err
		}
	}
	return nil
}

// SendMessage sends markdown text with an optional inline keyboard.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) (*Message, error) {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if keyboard != nil {
		payload["reply_markup"] = keyboard
	}
	var msg Message
	if err := c.call(ctx, "sendMessage", payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EditMessageText replaces the text of a previously sent message and drops
// its keyboard.
func (c *Client) EditMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	return c.call(ctx, "editMessageText", payload, nil)
}

// EditMessageReplyMarkup replaces (or clears, with nil) a message's keyboard.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, chatID, messageID int64, keyboard *InlineKeyboardMarkup) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}
	if keyboard != nil {
		payload["reply_markup"] = keyboard
	}
	return c.call(ctx, "editMessageReplyMarkup", payload, nil)
}

// DeleteMessage removes a previously sent message.
func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}
	return c.call(ctx, "deleteMessage", payload, nil)
}

// AnswerCallback acknowledges a callback query, optionally as an alert.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error {
	payload := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		payload["text"] = text
	}
	if showAlert {
		payload["show_alert"] = true
	}
	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

// SendVoice re-sends a stored voice file by its Telegram file id.
func (c *Client) SendVoice(ctx context.Context, chatID int64, fileID, caption string) error {
	payload := map[string]interface{}{
		"chat_id": chatID,
		"voice":   fileID,
	}
	if caption != "" {
		payload["caption"] = caption
	}
	return c.call(ctx, "sendVoice", payload, nil)
}

// GetUpdates long-polls for updates past the given offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	payload := map[string]interface{}{
		"timeout": timeoutSeconds,
	}
	if offset > 0 {
		payload["offset"] = offset
	}
	var updates []Update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// DownloadVoice fetches the raw bytes of a voice message.
func (c *Client) DownloadVoice(ctx context.Context, fileID string) ([]byte, error) {
	var file File
	if err := c.call(ctx, "getFile", map[string]interface{}{"file_id": fileID}, &file); err != nil {
		return nil, err
	}
	if file.FilePath == "" {
		return nil, fmt.Errorf("telegram returned no file path for %s", fileID)
	}

	url := c.apiRoot + "/file/bot" + c.token + "/" + file.FilePath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram file download status=%d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
