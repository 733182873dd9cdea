package bot

import (
	"context"
	"log"
	"strings"

	"github.com/AlexanderModestov/thoughtreader/internal/resolver"
	userdomain "github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	"github.com/AlexanderModestov/thoughtreader/pkg/telegram"
)

func (b *Bot) handleCommand(ctx context.Context, msg *telegram.Message) {
	command, args := splitCommand(msg.Text)

	switch command {
	case "/start":
		b.cmdStart(ctx, msg)
	case "/help":
		b.send(ctx, msg.Chat.ID, helpText, nil)
	case "/task":
		b.resolver.SetDirective(msg.From.ID, resolver.AwaitingTasks)
		b.send(ctx, msg.Chat.ID, "Send a voice message or text with tasks", nil)
	case "/meet":
		b.resolver.SetDirective(msg.From.ID, resolver.AwaitingMeeting)
		b.send(ctx, msg.Chat.ID, "Send a voice message or text about the meeting", nil)
	case "/note":
		b.resolver.SetDirective(msg.From.ID, resolver.AwaitingNote)
		b.send(ctx, msg.Chat.ID, "Send a voice message or text for the note", nil)
	case "/tasks":
		b.cmdTasks(ctx, msg)
	case "/meetings":
		b.cmdMeetings(ctx, msg)
	case "/notes":
		b.cmdNotes(ctx, msg)
	case "/projects":
		b.cmdProjects(ctx, msg)
	case "/search":
		b.cmdSearch(ctx, msg, args)
	default:
		b.send(ctx, msg.Chat.ID, "Unknown command. Use /help to see what I can do.", nil)
	}
}

func (b *Bot) cmdStart(ctx context.Context, msg *telegram.Message) {
	_, created, err := b.userUC.EnsureRegistered(msg.From.ID, msg.From.Username)
	if err != nil {
		log.Printf("[Bot] register user %d: %v", msg.From.ID, err)
		b.send(ctx, msg.Chat.ID, "Error setting up your account. Please try /start again.", nil)
		return
	}
	if created {
		log.Printf("[Bot] registered user %d", msg.From.ID)
	}
	b.send(ctx, msg.Chat.ID, helpText, nil)
}

func (b *Bot) cmdTasks(ctx context.Context, msg *telegram.Message) {
	user, ok := b.requireUser(ctx, msg)
	if !ok {
		return
	}
	pending, doneToday, err := b.taskUC.Overview(user.ID)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error loading tasks: "+err.Error(), nil)
		return
	}
	if len(pending) == 0 && len(doneToday) == 0 {
		b.send(ctx, msg.Chat.ID, "📋 No tasks yet. Use /task to create!", nil)
		return
	}
	b.send(ctx, msg.Chat.ID, formatTasksOverview(pending, doneToday), tasksListKeyboard(pending))
}

func (b *Bot) cmdMeetings(ctx context.Context, msg *telegram.Message) {
	user, ok := b.requireUser(ctx, msg)
	if !ok {
		return
	}
	meetings, err := b.meetingUC.List(user.ID, 10)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error loading meetings: "+err.Error(), nil)
		return
	}
	if len(meetings) == 0 {
		b.send(ctx, msg.Chat.ID, "📋 No meetings yet. Use /meet to create!", nil)
		return
	}
	b.send(ctx, msg.Chat.ID, formatMeetingsList(meetings), nil)
}

func (b *Bot) cmdNotes(ctx context.Context, msg *telegram.Message) {
	user, ok := b.requireUser(ctx, msg)
	if !ok {
		return
	}
	notes, err := b.noteUC.List(user.ID, 10)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error loading notes: "+err.Error(), nil)
		return
	}
	if len(notes) == 0 {
		b.send(ctx, msg.Chat.ID, "📝 No notes yet. Use /note to create!", nil)
		return
	}
	b.send(ctx, msg.Chat.ID, formatNotesList(notes), nil)
}

func (b *Bot) cmdProjects(ctx context.Context, msg *telegram.Message) {
	user, ok := b.requireUser(ctx, msg)
	if !ok {
		return
	}
	projects, err := b.projectUC.ListWithCounts(user.ID)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error loading projects: "+err.Error(), nil)
		return
	}
	b.send(ctx, msg.Chat.ID, formatProjectsList(projects), projectsKeyboard())
}

func (b *Bot) cmdSearch(ctx context.Context, msg *telegram.Message, args string) {
	if strings.TrimSpace(args) == "" {
		b.send(ctx, msg.Chat.ID, "Usage: /search <query>", nil)
		return
	}
	user, ok := b.requireUser(ctx, msg)
	if !ok {
		return
	}
	results, err := b.searchSvc.Search(user.ID, args)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error searching: "+err.Error(), nil)
		return
	}
	if len(results) == 0 {
		b.send(ctx, msg.Chat.ID, "Nothing found for \""+args+"\".", nil)
		return
	}
	b.send(ctx, msg.Chat.ID, formatSearchResults(args, results), nil)
}

// requireUser resolves the sender to a registered user or tells them to
// /start. Listing commands never auto-register.
func (b *Bot) requireUser(ctx context.Context, msg *telegram.Message) (*userdomain.User, bool) {
	user, err := b.userUC.FindByTelegramID(msg.From.ID)
	if err != nil {
		b.send(ctx, msg.Chat.ID, "Error loading your account: "+err.Error(), nil)
		return nil, false
	}
	if user == nil {
		b.send(ctx, msg.Chat.ID, notRegisteredText, nil)
		return nil, false
	}
	return user, true
}

func splitCommand(text string) (command, args string) {
	parts := strings.SplitN(text, " ", 2)
	command = parts[0]
	// strip the @BotName suffix from group-chat commands
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return command, args
}
