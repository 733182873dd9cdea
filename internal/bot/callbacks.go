package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	meetingdomain "github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/resolver"
	userdomain "github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	"github.com/AlexanderModestov/thoughtreader/pkg/telegram"
)

// handleCallback routes "<entity>:<action>:<id>" button presses. Every
// branch answers the callback query so the Telegram client stops its
// spinner, even on failure.
func (b *Bot) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	parts := strings.SplitN(cb.Data, ":", 3)
	if len(parts) < 2 {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	entity, action := parts[0], parts[1]
	var ref string
	if len(parts) == 3 {
		ref = parts[2]
	}

	switch entity + ":" + action {
	case "tasks:save":
		b.cbTasksSave(ctx, cb, ref)
	case "tasks:cancel":
		b.cbCancel(ctx, cb, ref, "Tasks not found or already saved.")
	case "meeting:save":
		b.cbMeetingSave(ctx, cb, ref)
	case "meeting:cancel":
		b.cbCancel(ctx, cb, ref, "Meeting not found or already saved.")
	case "meeting:replay":
		b.cbMeetingReplay(ctx, cb, ref)
	case "meeting:copy":
		b.cbMeetingCopy(ctx, cb, ref)
	case "note:replay":
		b.cbNoteReplay(ctx, cb, ref)
	case "note:delete":
		b.cbNoteDelete(ctx, cb, ref)
	case "task:done":
		b.cbTaskToggle(ctx, cb, ref)
	case "project:new":
		b.cbProjectNew(ctx, cb)
	default:
		b.answer(ctx, cb.ID, "", false)
	}
}

func (b *Bot) cbTasksSave(ctx context.Context, cb *telegram.CallbackQuery, batchID string) {
	result, err := b.resolver.Confirm(batchID)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			b.answer(ctx, cb.ID, "Tasks not found or already saved.", true)
			return
		}
		b.answer(ctx, cb.ID, "Error saving: "+err.Error(), true)
		return
	}
	b.answer(ctx, cb.ID, "Saved!", false)
	b.editCallbackMessage(ctx, cb,
		fmt.Sprintf("✅ %d tasks saved!\n\n/tasks - view all tasks", result.SavedTasks))
}

func (b *Bot) cbMeetingSave(ctx context.Context, cb *telegram.CallbackQuery, batchID string) {
	result, err := b.resolver.Confirm(batchID)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			b.answer(ctx, cb.ID, "Meeting not found or already saved.", true)
			return
		}
		b.answer(ctx, cb.ID, "Error saving: "+err.Error(), true)
		return
	}
	b.answer(ctx, cb.ID, "Saved!", false)

	meeting, err := b.meetingUC.Get(result.MeetingID)
	if err != nil || meeting == nil {
		b.editCallbackMessage(ctx, cb, "✅ Meeting saved!")
		return
	}
	if cb.Message != nil {
		b.send(ctx, cb.Message.Chat.ID,
			"✅ Meeting saved!\n\n/meetings - view all meetings",
			meetingActionsKeyboard(meeting.ID, meeting.VoiceFileID != ""))
		_ = b.tg.EditMessageReplyMarkup(ctx, cb.Message.Chat.ID, cb.Message.MessageID, nil)
	}
}

// cbCancel pops the batch without saving. A stale id reports failure
// instead of silently acknowledging.
func (b *Bot) cbCancel(ctx context.Context, cb *telegram.CallbackQuery, batchID, missingText string) {
	if err := b.resolver.Cancel(batchID); err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			b.answer(ctx, cb.ID, missingText, true)
			return
		}
		b.answer(ctx, cb.ID, "Error: "+err.Error(), true)
		return
	}
	b.answer(ctx, cb.ID, "Cancelled", false)
	b.editCallbackMessage(ctx, cb, "🗑 Cancelled")
}

func (b *Bot) cbMeetingReplay(ctx context.Context, cb *telegram.CallbackQuery, ref string) {
	id, err := parseID(ref)
	if err != nil {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	meeting, err := b.meetingUC.Get(id)
	if err != nil || meeting == nil || meeting.VoiceFileID == "" {
		b.answer(ctx, cb.ID, "Voice recording not available.", true)
		return
	}
	b.answer(ctx, cb.ID, "", false)
	if cb.Message != nil {
		if err := b.tg.SendVoice(ctx, cb.Message.Chat.ID, meeting.VoiceFileID, "🎙 "+meeting.Title); err != nil {
			log.Printf("[Bot] replay meeting voice: %v", err)
		}
	}
}

// cbMeetingCopy re-sends the meeting as plain text so the user can
// forward it without the keyboard attached.
func (b *Bot) cbMeetingCopy(ctx context.Context, cb *telegram.CallbackQuery, ref string) {
	id, err := parseID(ref)
	if err != nil {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	meeting, err := b.meetingUC.Get(id)
	if err != nil || meeting == nil {
		b.answer(ctx, cb.ID, "Meeting not found.", true)
		return
	}
	b.answer(ctx, cb.ID, "Copied below", false)
	if cb.Message != nil {
		b.send(ctx, cb.Message.Chat.ID, meetingCopyText(meeting), nil)
	}
}

func (b *Bot) cbNoteReplay(ctx context.Context, cb *telegram.CallbackQuery, ref string) {
	id, err := parseID(ref)
	if err != nil {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	note, err := b.noteUC.Get(id)
	if err != nil || note == nil || note.VoiceFileID == "" {
		b.answer(ctx, cb.ID, "Voice recording not available.", true)
		return
	}
	b.answer(ctx, cb.ID, "", false)
	if cb.Message != nil {
		if err := b.tg.SendVoice(ctx, cb.Message.Chat.ID, note.VoiceFileID, "🎙 "+note.DisplayTitle()); err != nil {
			log.Printf("[Bot] replay note voice: %v", err)
		}
	}
}

func (b *Bot) cbNoteDelete(ctx context.Context, cb *telegram.CallbackQuery, ref string) {
	id, err := parseID(ref)
	if err != nil {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	user, ok := b.callbackUser(ctx, cb)
	if !ok {
		return
	}
	deleted, err := b.noteUC.Delete(user.ID, id)
	if err != nil {
		b.answer(ctx, cb.ID, "Error deleting: "+err.Error(), true)
		return
	}
	if !deleted {
		b.answer(ctx, cb.ID, "Note not found.", true)
		return
	}
	b.answer(ctx, cb.ID, "Deleted", false)
	b.editCallbackMessage(ctx, cb, "🗑 Note deleted")
}

func (b *Bot) cbTaskToggle(ctx context.Context, cb *telegram.CallbackQuery, ref string) {
	id, err := parseID(ref)
	if err != nil {
		b.answer(ctx, cb.ID, "", false)
		return
	}
	user, ok := b.callbackUser(ctx, cb)
	if !ok {
		return
	}
	done, found, err := b.taskUC.Toggle(user.ID, id)
	if err != nil {
		b.answer(ctx, cb.ID, "Error: "+err.Error(), true)
		return
	}
	if !found {
		b.answer(ctx, cb.ID, "Task not found.", true)
		return
	}
	if done {
		b.answer(ctx, cb.ID, "Task completed!", false)
	} else {
		b.answer(ctx, cb.ID, "Task marked pending!", false)
	}
	b.refreshTasksMessage(ctx, cb)
}

// refreshTasksMessage rebuilds the /tasks overview in place after a toggle
func (b *Bot) refreshTasksMessage(ctx context.Context, cb *telegram.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	user, err := b.userUC.FindByTelegramID(cb.From.ID)
	if err != nil || user == nil {
		return
	}
	pending, doneToday, err := b.taskUC.Overview(user.ID)
	if err != nil {
		return
	}
	if len(pending) == 0 && len(doneToday) == 0 {
		_ = b.tg.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, "📋 No tasks yet. Use /task to create!")
		return
	}
	_ = b.tg.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, formatTasksOverview(pending, doneToday))
	_ = b.tg.EditMessageReplyMarkup(ctx, cb.Message.Chat.ID, cb.Message.MessageID, tasksListKeyboard(pending))
}

func (b *Bot) cbProjectNew(ctx context.Context, cb *telegram.CallbackQuery) {
	b.resolver.SetDirective(cb.From.ID, resolver.AwaitingProject)
	b.answer(ctx, cb.ID, "", false)
	if cb.Message != nil {
		b.send(ctx, cb.Message.Chat.ID,
			"Write the name and keywords separated by |\n\nExample: `Repair | repair, plumber, materials`", nil)
	}
}

// callbackUser resolves the callback sender to a registered user. Button
// presses only ever act on the presser's own records.
func (b *Bot) callbackUser(ctx context.Context, cb *telegram.CallbackQuery) (*userdomain.User, bool) {
	user, err := b.userUC.FindByTelegramID(cb.From.ID)
	if err != nil {
		b.answer(ctx, cb.ID, "Error loading your account: "+err.Error(), true)
		return nil, false
	}
	if user == nil {
		b.answer(ctx, cb.ID, notRegisteredText, true)
		return nil, false
	}
	return user, true
}

func (b *Bot) answer(ctx context.Context, callbackID, text string, alert bool) {
	if err := b.tg.AnswerCallback(ctx, callbackID, text, alert); err != nil {
		log.Printf("[Bot] answer callback: %v", err)
	}
}

func (b *Bot) editCallbackMessage(ctx context.Context, cb *telegram.CallbackQuery, text string) {
	if cb.Message == nil {
		return
	}
	if err := b.tg.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, text); err != nil {
		log.Printf("[Bot] edit message: %v", err)
	}
}

func meetingCopyText(m *meetingdomain.Meeting) string {
	lines := []string{m.Title, ""}
	if m.Participants != "" {
		lines = append(lines, "Participants: "+m.Participants)
	}
	if m.ScheduledAt != nil {
		lines = append(lines, "When: "+m.ScheduledAt.Format("2006-01-02 15:04"))
	}
	if m.Agenda != "" {
		lines = append(lines, "", "Agenda:", m.Agenda)
	}
	if m.Goal != "" {
		lines = append(lines, "", "Goal: "+m.Goal)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func parseID(ref string) (uint, error) {
	n, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
