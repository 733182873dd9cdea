package bot

import (
	"fmt"

	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
	"github.com/AlexanderModestov/thoughtreader/pkg/telegram"
)

func confirmKeyboard(prefix, batchID string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "✅ Save", CallbackData: fmt.Sprintf("%s:save:%s", prefix, batchID)},
			{Text: "🗑 Cancel", CallbackData: fmt.Sprintf("%s:cancel:%s", prefix, batchID)},
		}},
	}
}

func noteActionsKeyboard(noteID uint, hasVoice bool) *telegram.InlineKeyboardMarkup {
	var row []telegram.InlineKeyboardButton
	if hasVoice {
		row = append(row, telegram.InlineKeyboardButton{
			Text: "🎙 Replay", CallbackData: fmt.Sprintf("note:replay:%d", noteID),
		})
	}
	row = append(row, telegram.InlineKeyboardButton{
		Text: "🗑 Delete", CallbackData: fmt.Sprintf("note:delete:%d", noteID),
	})
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}

func meetingActionsKeyboard(meetingID uint, hasVoice bool) *telegram.InlineKeyboardMarkup {
	var row []telegram.InlineKeyboardButton
	if hasVoice {
		row = append(row, telegram.InlineKeyboardButton{
			Text: "🎙 Replay", CallbackData: fmt.Sprintf("meeting:replay:%d", meetingID),
		})
	}
	row = append(row, telegram.InlineKeyboardButton{
		Text: "📋 Copy", CallbackData: fmt.Sprintf("meeting:copy:%d", meetingID),
	})
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}

func tasksListKeyboard(tasks []*taskdomain.Task) *telegram.InlineKeyboardMarkup {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if len([]rune(title)) > 30 {
			title = string([]rune(title)[:30]) + "..."
		}
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         "✅ " + title,
			CallbackData: fmt.Sprintf("task:done:%d", t.ID),
		}})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func projectsKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "➕ New project", CallbackData: "project:new"},
		}},
	}
}
