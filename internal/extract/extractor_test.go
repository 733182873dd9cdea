package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedToday is a Monday, so relative weekday phrases have known answers.
var fixedToday = time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

type fakeModel struct {
	response   string
	err        error
	lastPrompt string
}

func (m *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.response, m.err
}

func newTestExtractor(model *fakeModel) *Extractor {
	return NewWithClock(model, func() time.Time { return fixedToday })
}

func TestExtractTasks(t *testing.T) {
	model := &fakeModel{response: `[
		{"title": "Buy materials", "priority": "high", "due_date": "2024-06-15"},
		{"title": "Call the plumber", "priority": "", "due_date": "tomorrow"}
	]`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "buy materials and call the plumber", ModeTasks)
	require.NoError(t, err)
	require.Equal(t, ModeTasks, payload.Mode)
	require.Len(t, payload.Tasks, 2)

	assert.Equal(t, "Buy materials", payload.Tasks[0].Title)
	assert.Equal(t, taskdomain.PriorityHigh, payload.Tasks[0].Priority)
	require.NotNil(t, payload.Tasks[0].DueDate)
	assert.Equal(t, "2024-06-15", payload.Tasks[0].DueDate.Format("2006-01-02"))

	// blank priority normalizes, relative date resolves against today
	assert.Equal(t, taskdomain.PriorityMedium, payload.Tasks[1].Priority)
	require.NotNil(t, payload.Tasks[1].DueDate)
	assert.Equal(t, "2024-06-11", payload.Tasks[1].DueDate.Format("2006-01-02"))
}

func TestExtractTasksPromptCarriesInputAndDate(t *testing.T) {
	model := &fakeModel{response: `[]`}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "fix the leaking tap", ModeTasks)
	require.NoError(t, err)

	assert.Contains(t, model.lastPrompt, "fix the leaking tap")
	assert.Contains(t, model.lastPrompt, "2024-06-10")
}

func TestExtractStripsCodeFence(t *testing.T) {
	model := &fakeModel{response: "```json\n[{\"title\": \"Ship the release\", \"priority\": \"urgent\", \"due_date\": null}]\n```"}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "ship it", ModeTasks)
	require.NoError(t, err)
	require.Len(t, payload.Tasks, 1)
	assert.Equal(t, "Ship the release", payload.Tasks[0].Title)
	assert.Equal(t, taskdomain.PriorityUrgent, payload.Tasks[0].Priority)
	assert.Nil(t, payload.Tasks[0].DueDate)
}

func TestExtractBareFenceWithoutLanguageTag(t *testing.T) {
	model := &fakeModel{response: "```\n{\"title\": \"Sync\", \"participants\": [], \"agenda\": [], \"goal\": \"\"}\n```"}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "sync", ModeMeeting)
	require.NoError(t, err)
	assert.Equal(t, "Sync", payload.Meeting.Title)
}

func TestExtractMeeting(t *testing.T) {
	model := &fakeModel{response: `{
		"title": "Quarterly planning",
		"participants": ["Anna", "Boris"],
		"agenda": ["Review last quarter", "Set targets"],
		"goal": "Agree on the roadmap"
	}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "planning meeting with Anna and Boris", ModeMeeting)
	require.NoError(t, err)
	require.Equal(t, ModeMeeting, payload.Mode)
	require.NotNil(t, payload.Meeting)

	assert.Equal(t, "Quarterly planning", payload.Meeting.Title)
	assert.Equal(t, []string{"Anna", "Boris"}, payload.Meeting.Participants)
	assert.Equal(t, "- Review last quarter\n- Set targets", payload.Meeting.AgendaBlock())
	assert.Equal(t, "Agree on the roadmap", payload.Meeting.Goal)
}

func TestExtractMeetingMissingListsBecomeEmpty(t *testing.T) {
	model := &fakeModel{response: `{"title": "Standup"}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "standup", ModeMeeting)
	require.NoError(t, err)
	assert.NotNil(t, payload.Meeting.Participants)
	assert.Empty(t, payload.Meeting.Participants)
	assert.NotNil(t, payload.Meeting.Agenda)
	assert.Empty(t, payload.Meeting.Agenda)
}

func TestExtractMeetingWithoutTitleFails(t *testing.T) {
	model := &fakeModel{response: `{"title": "", "participants": ["Anna"]}`}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "something", ModeMeeting)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestExtractNote(t *testing.T) {
	model := &fakeModel{response: `{
		"title": "Renovation ideas",
		"content": "Paint the hallway light grey, replace the door handles.",
		"tags": ["home", "renovation"]
	}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "thoughts about renovation", ModeNote)
	require.NoError(t, err)
	require.NotNil(t, payload.Note)
	assert.Equal(t, "Renovation ideas", payload.Note.Title)
	assert.Equal(t, []string{"home", "renovation"}, payload.Note.Tags)
}

func TestExtractNoteEmptyContentFallsBackToInput(t *testing.T) {
	model := &fakeModel{response: `{"title": "", "content": "", "tags": null}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "raw thought to keep", ModeNote)
	require.NoError(t, err)
	assert.Equal(t, "raw thought to keep", payload.Note.Content)
	assert.NotNil(t, payload.Note.Tags)
}

func TestExtractAuto(t *testing.T) {
	model := &fakeModel{response: `{
		"summary": "Renovation plans with a deadline",
		"cleaned_text": "Need to finish the renovation by Friday, meeting with the contractor on Monday.",
		"tasks": [{"title": "Finish the renovation", "priority": "high", "due_date": "friday"}],
		"meetings": [{"title": "Contractor meeting", "participants": ["contractor"], "agenda": []}]
	}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "renovation rambling", ModeAuto)
	require.NoError(t, err)
	require.NotNil(t, payload.Auto)

	assert.Equal(t, "Renovation plans with a deadline", payload.Auto.Summary)
	require.Len(t, payload.Auto.Tasks, 1)
	require.NotNil(t, payload.Auto.Tasks[0].DueDate)
	// nearest Friday after Monday 2024-06-10
	assert.Equal(t, "2024-06-14", payload.Auto.Tasks[0].DueDate.Format("2006-01-02"))
	require.Len(t, payload.Auto.Meetings, 1)
}

func TestExtractAutoEmptyCleanedTextFallsBack(t *testing.T) {
	model := &fakeModel{response: `{"summary": "A thought", "cleaned_text": "", "tasks": [], "meetings": []}`}
	e := newTestExtractor(model)

	payload, err := e.Extract(context.Background(), "original words", ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, "original words", payload.Auto.CleanedText)
}

func TestExtractModelErrorWrapsEmptyResponse(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "anything", ModeTasks)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExtractBlankResponse(t *testing.T) {
	model := &fakeModel{response: "   \n  "}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "anything", ModeTasks)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestExtractMalformedJSON(t *testing.T) {
	model := &fakeModel{response: "I could not find any tasks in that message."}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "anything", ModeTasks)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestExtractErrorCarriesBoundedPrefix(t *testing.T) {
	long := strings.Repeat("x", 500)
	model := &fakeModel{response: long}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "anything", ModeTasks)
	require.ErrorIs(t, err, ErrInvalidPayload)
	assert.Less(t, len(err.Error()), 200)
}

func TestExtractTaskWithoutTitleFails(t *testing.T) {
	model := &fakeModel{response: `[{"title": "  ", "priority": "low", "due_date": null}]`}
	e := newTestExtractor(model)

	_, err := e.Extract(context.Background(), "anything", ModeTasks)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
