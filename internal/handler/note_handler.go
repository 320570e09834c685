package handler

import (
	"html/template"
	"net/http"
	"time"

	"github.com/cyclelog/internal/locale"
	"github.com/cyclelog/internal/service"
	"github.com/gin-gonic/gin"
)

type notePayload struct {
	Text string `json:"text"`
}

type noteView struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	HTML      template.HTML `json:"html"`
	CreatedAt time.Time     `json:"created_at"`
	IsRead    bool          `json:"is_read"`
}

// ListLoveNotes 返回短笺，?unread=1 时只返回未读的
func (a *API) ListLoveNotes(c *gin.Context) {
	var notes []service.LoveNote
	switch c.Query("unread") {
	case "1", "true":
		notes = a.notes.Available()
	default:
		notes = a.notes.List()
	}

	items := make([]noteView, 0, len(notes))
	for _, note := range notes {
		items = append(items, toNoteView(note))
	}
	c.JSON(http.StatusOK, gin.H{"notes": items})
}

// SaveLoveNote 新增短笺
func (a *API) SaveLoveNote(c *gin.Context) {
	var payload notePayload
	if !bindJSON(c, &payload, locale.Pick(requestLanguage(c), "invalid request body", "请求格式错误")) {
		return
	}

	note, err := a.notes.Save(payload.Text)
	if err != nil {
		handleCycleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": toNoteView(note)})
}

// MarkLoveNoteRead 标记短笺已读
func (a *API) MarkLoveNoteRead(c *gin.Context) {
	note, err := a.notes.MarkRead(c.Param("id"))
	if err != nil {
		handleCycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": toNoteView(note)})
}

// DeleteLoveNote 删除短笺
func (a *API) DeleteLoveNote(c *gin.Context) {
	if !a.notes.Delete(c.Param("id")) {
		handleCycleError(c, service.ErrNoteNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func toNoteView(note service.LoveNote) noteView {
	view := noteView{
		ID:        note.ID,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
		IsRead:    note.IsRead,
	}
	if rendered, err := renderMarkdown(note.Text); err == nil {
		view.HTML = rendered
	}
	return view
}
