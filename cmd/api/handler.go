package api

import (
	"net/http"
	"strconv"

	meetingusecase "github.com/AlexanderModestov/thoughtreader/internal/meeting/usecase"
	noteusecase "github.com/AlexanderModestov/thoughtreader/internal/note/usecase"
	projectusecase "github.com/AlexanderModestov/thoughtreader/internal/project/usecase"
	"github.com/AlexanderModestov/thoughtreader/internal/search"
	taskusecase "github.com/AlexanderModestov/thoughtreader/internal/task/usecase"
	userdomain "github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	userusecase "github.com/AlexanderModestov/thoughtreader/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// Handler exposes the bot's records over HTTP. It is a read-mostly
// companion surface; records are created through the bot, not here.
type Handler struct {
	userUC    userusecase.UserUsecase
	projectUC projectusecase.ProjectUsecase
	taskUC    taskusecase.TaskUsecase
	noteUC    noteusecase.NoteUsecase
	meetingUC meetingusecase.MeetingUsecase
	searchSvc *search.Service
}

// NewHandler creates a new Handler
func NewHandler(
	userUC userusecase.UserUsecase,
	projectUC projectusecase.ProjectUsecase,
	taskUC taskusecase.TaskUsecase,
	noteUC noteusecase.NoteUsecase,
	meetingUC meetingusecase.MeetingUsecase,
	searchSvc *search.Service,
) *Handler {
	return &Handler{
		userUC:    userUC,
		projectUC: projectUC,
		taskUC:    taskUC,
		noteUC:    noteUC,
		meetingUC: meetingUC,
		searchSvc: searchSvc,
	}
}

// resolveUser maps the telegram_id query param to a registered user
func (h *Handler) resolveUser(c *gin.Context) (*userdomain.User, bool) {
	telegramID, err := strconv.ParseInt(c.Query("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "telegram_id query parameter is required"})
		return nil, false
	}
	user, err := h.userUC.FindByTelegramID(telegramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	return user, true
}

// GetTasks returns the pending and done-today tasks for a user
// GET /api/tasks?telegram_id=123
func (h *Handler) GetTasks(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	pending, doneToday, err := h.taskUC.Overview(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending":    pending,
		"done_today": doneToday,
	})
}

// ToggleTask flips a task's done state for the owning user
// PATCH /api/tasks/:id/toggle?telegram_id=123
func (h *Handler) ToggleTask(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}
	done, found, err := h.taskUC.Toggle(user.ID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "is_done": done})
}

// GetNotes returns the user's recent notes
// GET /api/notes?telegram_id=123&limit=10
func (h *Handler) GetNotes(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	notes, err := h.noteUC.List(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// DeleteNote removes a note owned by the user
// DELETE /api/notes/:id?telegram_id=123
func (h *Handler) DeleteNote(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}
	deleted, err := h.noteUC.Delete(user.ID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// GetMeetings returns the user's recent meetings
// GET /api/meetings?telegram_id=123&limit=10
func (h *Handler) GetMeetings(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	meetings, err := h.meetingUC.List(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// GetProjects returns the user's projects with open task counts
// GET /api/projects?telegram_id=123
func (h *Handler) GetProjects(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	projects, err := h.projectUC.ListWithCounts(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Search runs the cross-entity substring search
// GET /api/search?telegram_id=123&q=plumber
func (h *Handler) Search(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	results, err := h.searchSvc.Search(user.ID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
}
