// Package resolver decides what an incoming message is and drives the
// matching extraction path: directed flows set a per-user awaiting state,
// undirected content goes through auto-extraction and persists immediately.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/extract"
	meetingdomain "github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
	meetingrepo "github.com/AlexanderModestov/thoughtreader/internal/meeting/repository"
	notedomain "github.com/AlexanderModestov/thoughtreader/internal/note/domain"
	noterepo "github.com/AlexanderModestov/thoughtreader/internal/note/repository"
	projectdomain "github.com/AlexanderModestov/thoughtreader/internal/project/domain"
	projectrepo "github.com/AlexanderModestov/thoughtreader/internal/project/repository"
	projectusecase "github.com/AlexanderModestov/thoughtreader/internal/project/usecase"
	"github.com/AlexanderModestov/thoughtreader/internal/session"
	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
	taskrepo "github.com/AlexanderModestov/thoughtreader/internal/task/repository"
	userdomain "github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	userrepo "github.com/AlexanderModestov/thoughtreader/internal/user/repository"
)

var (
	// ErrUnknownUser means the sender never ran /start
	ErrUnknownUser = errors.New("user is not registered")

	// ErrNotFound means a batch identifier is unknown or already consumed
	ErrNotFound = errors.New("not found or already handled")
)

// Incoming is one content message (post-transcription if it was voice).
type Incoming struct {
	TelegramID    int64
	Text          string
	VoiceFileID   string
	VoiceDuration int
}

// Reply tells the delivery layer what to render. BatchID is set for flows
// that need a confirm/cancel decision; NoteID for flows that saved a note.
type Reply struct {
	Text         string
	BatchID      string
	BatchKind    string // "tasks" or "meeting"
	NoteID       uint
	NoteHasVoice bool
}

// ConfirmResult reports what a confirmed batch persisted.
type ConfirmResult struct {
	SavedTasks int
	MeetingID  uint
}

// Resolver is the per-message pipeline: state lookup, extraction,
// routing, persistence.
type Resolver struct {
	db        *gorm.DB
	extractor *extract.Extractor
	sessions  *Sessions
	batches   session.BatchStore

	userRepo    userrepo.UserRepository
	projectRepo projectrepo.ProjectRepository
	taskRepo    taskrepo.TaskRepository
	noteRepo    noterepo.NoteRepository
	meetingRepo meetingrepo.MeetingRepository

	compact bool
}

// New wires a Resolver
func New(
	db *gorm.DB,
	extractor *extract.Extractor,
	batches session.BatchStore,
	userRepo userrepo.UserRepository,
	projectRepo projectrepo.ProjectRepository,
	taskRepo taskrepo.TaskRepository,
	noteRepo noterepo.NoteRepository,
	meetingRepo meetingrepo.MeetingRepository,
	compact bool,
) *Resolver {
	return &Resolver{
		db:          db,
		extractor:   extractor,
		sessions:    NewSessions(),
		batches:     batches,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		noteRepo:    noteRepo,
		meetingRepo: meetingRepo,
		compact:     compact,
	}
}

// SetDirective records that the user's next content message should be
// processed in the given mode, replacing any earlier directive.
func (r *Resolver) SetDirective(telegramID int64, state State) {
	r.sessions.Set(telegramID, state)
}

// HandleContent consumes one content message. The awaiting state (if any)
// is cleared before extraction runs, so a failure requires the user to
// re-issue the directive rather than retrying in place.
func (r *Resolver) HandleContent(ctx context.Context, in Incoming) (*Reply, error) {
	state := r.sessions.Take(in.TelegramID)

	// Command markers are never free content
	if state == Idle && strings.HasPrefix(in.Text, "/") {
		return nil, nil
	}

	user, err := r.userRepo.FindByTelegramID(in.TelegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	switch state {
	case AwaitingTasks:
		return r.processTasks(ctx, user, in)
	case AwaitingMeeting:
		return r.processMeeting(ctx, user, in)
	case AwaitingNote:
		return r.processNote(ctx, user, in)
	case AwaitingProject:
		return r.createProject(user, in.Text)
	default:
		return r.autoExtract(ctx, user, in)
	}
}

func (r *Resolver) processTasks(ctx context.Context, user *userdomain.User, in Incoming) (*Reply, error) {
	payload, err := r.extractor.Extract(ctx, in.Text, extract.ModeTasks)
	if err != nil {
		return nil, err
	}
	if len(payload.Tasks) == 0 {
		return &Reply{Text: "No tasks found in the message."}, nil
	}

	projects, defaultProject, err := r.loadProjects(user.ID)
	if err != nil {
		return nil, err
	}

	tasks := payload.Tasks
	for i := range tasks {
		assignProject(&tasks[i], tasks[i].Title, projects, defaultProject)
	}

	batchID := r.batches.Put(&session.Batch{
		UserID:        user.ID,
		Tasks:         tasks,
		RawText:       in.Text,
		VoiceFileID:   in.VoiceFileID,
		VoiceDuration: in.VoiceDuration,
	})

	log.Printf("[Resolver] drafted %d tasks batch=%s user=%d", len(tasks), batchID, user.ID)
	return &Reply{
		Text:      formatTaskDrafts(tasks),
		BatchID:   batchID,
		BatchKind: "tasks",
	}, nil
}

func (r *Resolver) processMeeting(ctx context.Context, user *userdomain.User, in Incoming) (*Reply, error) {
	payload, err := r.extractor.Extract(ctx, in.Text, extract.ModeMeeting)
	if err != nil {
		return nil, err
	}

	batchID := r.batches.Put(&session.Batch{
		UserID:        user.ID,
		Meeting:       payload.Meeting,
		RawText:       in.Text,
		VoiceFileID:   in.VoiceFileID,
		VoiceDuration: in.VoiceDuration,
	})

	log.Printf("[Resolver] drafted meeting batch=%s user=%d", batchID, user.ID)
	return &Reply{
		Text:      formatMeetingDraft(payload.Meeting),
		BatchID:   batchID,
		BatchKind: "meeting",
	}, nil
}

// processNote persists immediately: notes are low-risk and reversible via
// delete, so they skip the confirmation protocol.
func (r *Resolver) processNote(ctx context.Context, user *userdomain.User, in Incoming) (*Reply, error) {
	payload, err := r.extractor.Extract(ctx, in.Text, extract.ModeNote)
	if err != nil {
		return nil, err
	}
	draft := payload.Note

	projects, defaultProject, err := r.loadProjects(user.ID)
	if err != nil {
		return nil, err
	}
	project := projectusecase.Route(draft.Content, projects)
	if project == nil {
		project = defaultProject
	}

	note := &notedomain.Note{
		UserID:        user.ID,
		Title:         draft.Title,
		Content:       draft.Content,
		Tags:          strings.Join(draft.Tags, ", "),
		RawTranscript: in.Text,
		VoiceFileID:   in.VoiceFileID,
		VoiceDuration: in.VoiceDuration,
	}
	if project != nil {
		note.ProjectID = &project.ID
	}
	if err := r.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return &Reply{
		Text:         formatSavedNote(draft, projectName(project)),
		NoteID:       note.ID,
		NoteHasVoice: in.VoiceFileID != "",
	}, nil
}

// autoExtract is the undirected path: always creates an anchor note, plus
// extracted tasks and meetings linked to it, all in one transaction.
func (r *Resolver) autoExtract(ctx context.Context, user *userdomain.User, in Incoming) (*Reply, error) {
	payload, err := r.extractor.Extract(ctx, in.Text, extract.ModeAuto)
	if err != nil {
		return nil, err
	}
	result := payload.Auto

	projects, defaultProject, err := r.loadProjects(user.ID)
	if err != nil {
		return nil, err
	}

	note := &notedomain.Note{
		UserID:        user.ID,
		Title:         truncate(result.Summary, 100),
		Content:       result.Summary,
		RawTranscript: in.Text,
		VoiceFileID:   in.VoiceFileID,
		VoiceDuration: in.VoiceDuration,
	}
	if defaultProject != nil {
		note.ProjectID = &defaultProject.ID
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.noteRepo.WithTx(tx).Create(note); err != nil {
			return err
		}

		taskTx := r.taskRepo.WithTx(tx)
		for _, draft := range result.Tasks {
			assignProject(&draft, draft.Title, projects, defaultProject)
			task := &taskdomain.Task{
				UserID:       user.ID,
				ProjectID:    draft.ProjectID,
				SourceNoteID: &note.ID,
				Title:        draft.Title,
				Priority:     draft.Priority,
				DueDate:      draft.DueDate,
				RawText:      in.Text,
				VoiceFileID:  in.VoiceFileID,
			}
			if err := taskTx.Create(task); err != nil {
				return err
			}
		}

		meetingTx := r.meetingRepo.WithTx(tx)
		for _, draft := range result.Meetings {
			meeting := &meetingdomain.Meeting{
				UserID:        user.ID,
				SourceNoteID:  &note.ID,
				Title:         draft.Title,
				Participants:  strings.Join(draft.Participants, ", "),
				Agenda:        draft.AgendaBlock(),
				Goal:          draft.Goal,
				RawTranscript: in.Text,
				VoiceFileID:   in.VoiceFileID,
				VoiceDuration: in.VoiceDuration,
			}
			if err := meetingTx.Create(meeting); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist extraction: %w", err)
	}

	log.Printf("[Resolver] auto-extracted note=%d tasks=%d meetings=%d user=%d",
		note.ID, len(result.Tasks), len(result.Meetings), user.ID)
	return &Reply{
		Text:         extract.FormatAutoResult(result, r.compact),
		NoteID:       note.ID,
		NoteHasVoice: in.VoiceFileID != "",
	}, nil
}

func (r *Resolver) createProject(user *userdomain.User, text string) (*Reply, error) {
	name, keywords := splitProjectInput(text)
	if name == "" {
		return &Reply{Text: "Please provide a project name."}, nil
	}
	project := &projectdomain.Project{
		UserID:   user.ID,
		Name:     name,
		Keywords: keywords,
	}
	if err := r.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return &Reply{Text: fmt.Sprintf("Project %q created!", name)}, nil
}

// Confirm persists a pending batch. Exactly one of Confirm/Cancel succeeds
// for a given identifier; the loser gets ErrNotFound.
func (r *Resolver) Confirm(batchID string) (*ConfirmResult, error) {
	batch, ok := r.batches.Take(batchID)
	if !ok {
		return nil, ErrNotFound
	}

	if batch.Meeting != nil {
		meeting := &meetingdomain.Meeting{
			UserID:        batch.UserID,
			Title:         batch.Meeting.Title,
			Participants:  strings.Join(batch.Meeting.Participants, ", "),
			Agenda:        batch.Meeting.AgendaBlock(),
			Goal:          batch.Meeting.Goal,
			RawTranscript: batch.RawText,
			VoiceFileID:   batch.VoiceFileID,
			VoiceDuration: batch.VoiceDuration,
		}
		if err := r.meetingRepo.Create(meeting); err != nil {
			return nil, err
		}
		log.Printf("[Resolver] saved meeting=%d batch=%s", meeting.ID, batchID)
		return &ConfirmResult{MeetingID: meeting.ID}, nil
	}

	var saved int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taskTx := r.taskRepo.WithTx(tx)
		for _, draft := range batch.Tasks {
			task := &taskdomain.Task{
				UserID:      batch.UserID,
				ProjectID:   draft.ProjectID,
				Title:       draft.Title,
				Priority:    draft.Priority,
				DueDate:     draft.DueDate,
				RawText:     batch.RawText,
				VoiceFileID: batch.VoiceFileID,
			}
			if err := taskTx.Create(task); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Resolver] saved %d tasks batch=%s", saved, batchID)
	return &ConfirmResult{SavedTasks: saved}, nil
}

// Cancel discards a pending batch without writing anything.
func (r *Resolver) Cancel(batchID string) error {
	if _, ok := r.batches.Take(batchID); !ok {
		return ErrNotFound
	}
	return nil
}

func (r *Resolver) loadProjects(userID uint) ([]*projectdomain.Project, *projectdomain.Project, error) {
	projects, err := r.projectRepo.FindByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	var defaultProject *projectdomain.Project
	for _, p := range projects {
		if p.IsDefault {
			defaultProject = p
			break
		}
	}
	return projects, defaultProject, nil
}

func assignProject(draft *extract.TaskDraft, text string, projects []*projectdomain.Project, fallback *projectdomain.Project) {
	project := projectusecase.Route(text, projects)
	if project == nil {
		project = fallback
	}
	if project != nil {
		draft.ProjectID = &project.ID
		draft.ProjectName = project.Name
	} else {
		draft.ProjectName = "Inbox"
	}
}

func projectName(project *projectdomain.Project) string {
	if project == nil {
		return "Inbox"
	}
	return project.Name
}

func splitProjectInput(text string) (name, keywords string) {
	parts := strings.SplitN(text, "|", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		keywords = strings.TrimSpace(parts[1])
	}
	return name, keywords
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
