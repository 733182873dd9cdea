package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/AlexanderModestov/thoughtreader/pkg/ai"
)

// Extractor turns raw utterances into typed drafts via the language model.
// A single round trip per call; failures are never retried here.
type Extractor struct {
	model ai.LanguageModel
	now   func() time.Time
}

// New creates an Extractor backed by the given model
func New(model ai.LanguageModel) *Extractor {
	return &Extractor{model: model, now: time.Now}
}

// NewWithClock creates an Extractor with a fixed clock, for tests
func NewWithClock(model ai.LanguageModel, now func() time.Time) *Extractor {
	return &Extractor{model: model, now: now}
}

// Extract runs one model round trip and validates the response into the
// mode-specific payload.
func (e *Extractor) Extract(ctx context.Context, text string, mode Mode) (*Payload, error) {
	today := e.now()
	prompt := BuildPrompt(text, mode, today)

	log.Printf("[Extractor] mode=%s text length=%d", mode, len(text))

	response, err := e.model.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}
	if strings.TrimSpace(response) == "" {
		return nil, ErrEmptyResponse
	}

	raw := stripCodeFence(response)
	if raw == "" {
		return nil, invalidPayload("no JSON in response", response)
	}

	switch mode {
	case ModeTasks:
		return parseTasks(raw, today)
	case ModeMeeting:
		return parseMeeting(raw)
	case ModeNote:
		return parseNote(raw, text)
	case ModeAuto:
		return parseAuto(raw, text, today)
	default:
		return nil, fmt.Errorf("unknown extraction mode %q", mode)
	}
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// stripCodeFence accepts either a bare JSON blob or one wrapped in a
// markdown code fence, which models emit despite instructions.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

type rawTask struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

type rawMeeting struct {
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
	Agenda       []string `json:"agenda"`
	Goal         string   `json:"goal"`
}

func parseTasks(raw string, today time.Time) (*Payload, error) {
	var items []rawTask
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, invalidPayload("malformed task array", raw)
	}

	tasks := make([]TaskDraft, 0, len(items))
	for _, item := range items {
		draft, err := NewTaskDraft(item.Title, item.Priority, item.DueDate, today)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, draft)
	}
	return &Payload{Mode: ModeTasks, Tasks: tasks}, nil
}

func parseMeeting(raw string) (*Payload, error) {
	var item rawMeeting
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, invalidPayload("malformed meeting object", raw)
	}

	draft, err := NewMeetingDraft(item.Title, item.Participants, item.Agenda, item.Goal)
	if err != nil {
		return nil, err
	}
	return &Payload{Mode: ModeMeeting, Meeting: &draft}, nil
}

func parseNote(raw, original string) (*Payload, error) {
	var item struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, invalidPayload("malformed note object", raw)
	}

	draft := NewNoteDraft(item.Title, item.Content, original, item.Tags)
	return &Payload{Mode: ModeNote, Note: &draft}, nil
}

func parseAuto(raw, original string, today time.Time) (*Payload, error) {
	var item struct {
		Summary     string       `json:"summary"`
		CleanedText string       `json:"cleaned_text"`
		Tasks       []rawTask    `json:"tasks"`
		Meetings    []rawMeeting `json:"meetings"`
	}
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, invalidPayload("malformed extraction object", raw)
	}

	result := AutoResult{
		Summary:     item.Summary,
		CleanedText: item.CleanedText,
		Tasks:       []TaskDraft{},
		Meetings:    []MeetingDraft{},
	}
	if result.CleanedText == "" {
		result.CleanedText = original
	}

	for _, t := range item.Tasks {
		draft, err := NewTaskDraft(t.Title, t.Priority, t.DueDate, today)
		if err != nil {
			return nil, err
		}
		result.Tasks = append(result.Tasks, draft)
	}
	for _, m := range item.Meetings {
		draft, err := NewMeetingDraft(m.Title, m.Participants, m.Agenda, m.Goal)
		if err != nil {
			return nil, err
		}
		result.Meetings = append(result.Meetings, draft)
	}

	return &Payload{Mode: ModeAuto, Auto: &result}, nil
}
