// Package bot is the Telegram delivery layer: it maps updates onto the
// resolver and the entity usecases, and renders replies with keyboards.
// All collaborator failures are converted to user-visible messages here;
// nothing crosses this boundary as a panic or a crash.
package bot

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/AlexanderModestov/thoughtreader/internal/extract"
	meetingusecase "github.com/AlexanderModestov/thoughtreader/internal/meeting/usecase"
	noteusecase "github.com/AlexanderModestov/thoughtreader/internal/note/usecase"
	projectusecase "github.com/AlexanderModestov/thoughtreader/internal/project/usecase"
	"github.com/AlexanderModestov/thoughtreader/internal/resolver"
	"github.com/AlexanderModestov/thoughtreader/internal/search"
	taskusecase "github.com/AlexanderModestov/thoughtreader/internal/task/usecase"
	userusecase "github.com/AlexanderModestov/thoughtreader/internal/user/usecase"
	"github.com/AlexanderModestov/thoughtreader/pkg/telegram"
	"github.com/AlexanderModestov/thoughtreader/pkg/transcribe"
)

const notRegisteredText = "Please start the bot with /start first."

type Bot struct {
	tg          *telegram.Client
	transcriber transcribe.Transcriber
	resolver    *resolver.Resolver

	userUC    userusecase.UserUsecase
	projectUC projectusecase.ProjectUsecase
	taskUC    taskusecase.TaskUsecase
	noteUC    noteusecase.NoteUsecase
	meetingUC meetingusecase.MeetingUsecase
	searchSvc *search.Service

	pollTimeout int
}

// New wires the bot delivery layer
func New(
	tg *telegram.Client,
	transcriber transcribe.Transcriber,
	res *resolver.Resolver,
	userUC userusecase.UserUsecase,
	projectUC projectusecase.ProjectUsecase,
	taskUC taskusecase.TaskUsecase,
	noteUC noteusecase.NoteUsecase,
	meetingUC meetingusecase.MeetingUsecase,
	searchSvc *search.Service,
	pollTimeout int,
) *Bot {
	return &Bot{
		tg:          tg,
		transcriber: transcriber,
		resolver:    res,
		userUC:      userUC,
		projectUC:   projectUC,
		taskUC:      taskUC,
		noteUC:      noteUC,
		meetingUC:   meetingUC,
		searchSvc:   searchSvc,
		pollTimeout: pollTimeout,
	}
}

// Run polls for updates until the context is cancelled. Each update gets
// its own goroutine so one user's long model call never blocks another's
// message.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("[Bot] starting long-poll loop")
	return b.tg.Poll(ctx, b.pollTimeout, func(upd telegram.Update) {
		go b.handleUpdate(ctx, upd)
	})
}

func (b *Bot) handleUpdate(ctx context.Context, upd telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Bot] panic in update handler: %v", r)
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.Voice != nil:
		b.handleVoice(ctx, upd.Message)
	case upd.Message != nil && upd.Message.Text != "":
		b.handleText(ctx, upd.Message)
	}
}

func (b *Bot) handleText(ctx context.Context, msg *telegram.Message) {
	if strings.HasPrefix(msg.Text, "/") {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleContent(ctx, msg, resolver.Incoming{
		TelegramID: msg.From.ID,
		Text:       msg.Text,
	})
}

func (b *Bot) handleVoice(ctx context.Context, msg *telegram.Message) {
	processing, err := b.tg.SendMessage(ctx, msg.Chat.ID, "Processing...", nil)
	if err != nil {
		log.Printf("[Bot] send processing message: %v", err)
	}

	audio, err := b.tg.DownloadVoice(ctx, msg.Voice.FileID)
	if err != nil {
		b.replaceOrSend(ctx, msg.Chat.ID, processing, "Error downloading voice message: "+err.Error())
		return
	}

	text, err := b.transcriber.Transcribe(ctx, audio)
	if err != nil {
		b.replaceOrSend(ctx, msg.Chat.ID, processing, "Error transcribing: "+err.Error())
		return
	}

	if processing != nil {
		_ = b.tg.DeleteMessage(ctx, msg.Chat.ID, processing.MessageID)
	}

	b.handleContent(ctx, msg, resolver.Incoming{
		TelegramID:    msg.From.ID,
		Text:          text,
		VoiceFileID:   msg.Voice.FileID,
		VoiceDuration: msg.Voice.Duration,
	})
}

func (b *Bot) handleContent(ctx context.Context, msg *telegram.Message, in resolver.Incoming) {
	reply, err := b.resolver.HandleContent(ctx, in)
	if err != nil {
		b.send(ctx, msg.Chat.ID, contentErrorText(err), nil)
		return
	}
	if reply == nil {
		return
	}

	var keyboard *telegram.InlineKeyboardMarkup
	switch {
	case reply.BatchID != "":
		keyboard = confirmKeyboard(reply.BatchKind, reply.BatchID)
	case reply.NoteID != 0:
		keyboard = noteActionsKeyboard(reply.NoteID, reply.NoteHasVoice)
	}
	b.send(ctx, msg.Chat.ID, reply.Text, keyboard)
}

// contentErrorText maps pipeline failures to user-facing messages. No
// failure is retried; the user resends instead.
func contentErrorText(err error) string {
	switch {
	case errors.Is(err, resolver.ErrUnknownUser):
		return notRegisteredText
	case errors.Is(err, extract.ErrInvalidPayload):
		return "Sorry, I couldn't process that message. Please try sending it again."
	case errors.Is(err, extract.ErrEmptyResponse):
		return "The assistant returned nothing. Please try sending it again."
	default:
		return "Error processing: " + err.Error()
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) {
	if _, err := b.tg.SendMessage(ctx, chatID, text, keyboard); err != nil {
		log.Printf("[Bot] send message: %v", err)
	}
}

func (b *Bot) replaceOrSend(ctx context.Context, chatID int64, processing *telegram.Message, text string) {
	if processing != nil {
		if err := b.tg.EditMessageText(ctx, chatID, processing.MessageID, text); err == nil {
			return
		}
	}
	b.send(ctx, chatID, text, nil)
}
