package handler

import (
	"strconv"
	"strings"
	"unicode"

	"lawlex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseID extracts the term id that follows prefix in callback data
func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it means it was already edited by another callback
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons that did not reach their own handler
	key := callback.Unique
	if key == "" {
		key = data
	}
	switch key {
	case "browse", "results":
		return h.handleBrowse(c)
	case "filter":
		return h.handleFilter(c)
	case "reset":
		return h.handleReset(c)
	case "add":
		return h.requireAdmin(c, domain.PendingAdd, 0, h.handleAdd)
	case "export":
		return h.requireAdmin(c, domain.PendingExport, 0, h.handleExport)
	case "cancel":
		return h.handleCancel(c)
	case "main_menu":
		return h.handleStart(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "cat_"):
		return h.handleCategory(c, data)
	case strings.HasPrefix(data, "term_"):
		return h.handleTermSelection(c, data)
	case strings.HasPrefix(data, "type_"):
		return h.handleTypeSelection(c, data)
	case strings.HasPrefix(data, "edit_"):
		if id, ok := parseID(data, "edit_"); ok {
			return h.requireAdmin(c, domain.PendingEdit, id, func(c tele.Context) error {
				return h.startEdit(c, id)
			})
		}
	case strings.HasPrefix(data, "delok_"):
		if id, ok := parseID(data, "delok_"); ok {
			return h.requireAdmin(c, domain.PendingDelete, id, func(c tele.Context) error {
				return h.deleteTerm(c, id)
			})
		}
	case strings.HasPrefix(data, "del_"):
		if id, ok := parseID(data, "del_"); ok {
			return h.requireAdmin(c, domain.PendingDelete, id, func(c tele.Context) error {
				return h.confirmDelete(c, id)
			})
		}
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleBrowse shows the user's results with their last query and category
func (h *Handler) handleBrowse(c tele.Context) error {
	view, err := h.glossary.Browse(c.Sender().ID)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderResults(view, 1, h.pageSize)
	return h.show(c, text, markup)
}

// handleFilter shows the category picker
func (h *Handler) handleFilter(c tele.Context) error {
	state := h.glossary.ViewState(c.Sender().ID)
	text, markup := renderCategories(state.Category)
	return h.show(c, text, markup)
}

// handleReset clears the query and category
func (h *Handler) handleReset(c tele.Context) error {
	view, err := h.glossary.Reset(c.Sender().ID)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderResults(view, 1, h.pageSize)
	return h.show(c, text, markup)
}

// handleCategory applies the selected category
func (h *Handler) handleCategory(c tele.Context, data string) error {
	category, ok := domain.ParseCategory(strings.TrimPrefix(data, "cat_"))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown category"})
	}

	view, err := h.glossary.SetCategory(c.Sender().ID, category)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderResults(view, 1, h.pageSize)
	return h.show(c, text, markup)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "page_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}

	view, err := h.glossary.Browse(c.Sender().ID)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderResults(view, page, h.pageSize)
	return h.show(c, text, markup)
}

// handleTermSelection shows the card of a selected term
func (h *Handler) handleTermSelection(c tele.Context, data string) error {
	id, ok := parseID(data, "term_")
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid term"})
	}

	entry, err := h.glossary.Term(id)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderTerm(entry)
	return h.show(c, text, markup)
}

// handleTypeSelection picks the type while adding or editing
func (h *Handler) handleTypeSelection(c tele.Context, data string) error {
	state := h.GetState(c.Sender().ID)
	if state.State != domain.StateWaitingType {
		return c.Respond(&tele.CallbackResponse{Text: "Nothing to edit right now"})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch value := strings.TrimPrefix(data, "type_"); value {
	case "keep":
		return h.setDraftType(c, state, state.Draft.Type)
	case "auto":
		return h.setDraftType(c, state, "")
	default:
		t := domain.Type(value)
		if !t.IsKnown() {
			return c.Send("Please choose one of: v, n, adj, adv.", typeMarkup(!state.Target.IsNew()))
		}
		return h.setDraftType(c, state, t)
	}
}
