package handler

import (
	"strings"

	"lawlex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// keepValue leaves the current field unchanged while editing
const keepValue = "-"

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingPassword:
		return h.handlePassword(c, state, text)
	case domain.StateWaitingWord:
		return h.handleDraftWord(c, state, text)
	case domain.StateWaitingType:
		return h.handleDraftType(c, state, text)
	case domain.StateWaitingDefinition:
		return h.handleDraftDefinition(c, state, text)
	}

	return h.handleSearch(c, text)
}

// handleSearch runs the text as the user's new query
func (h *Handler) handleSearch(c tele.Context, query string) error {
	view, err := h.glossary.Search(c.Sender().ID, query)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderResults(view, 1, h.pageSize)
	return c.Send(text, markup)
}

// handlePassword checks the admin password and resumes the deferred action
func (h *Handler) handlePassword(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	if !h.authService.CheckPassword(text) {
		h.logger.Warn("Invalid admin password", zap.Int64("user_id", userID))
		return c.Send("❌ Invalid password. Please try again.", cancelMarkup())
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(genericErrorText)
	}

	h.logger.Info("User authorized",
		zap.Int64("user_id", userID),
		zap.String("pending", string(state.Pending)),
	)
	h.ResetState(userID)

	if err := h.flash(c, "✅ Access granted.", successNoticeTTL); err != nil {
		h.logger.Warn("Failed to send notice", zap.Error(err))
	}
	return h.resume(c, state.Pending, state.Target.ID)
}

// resume runs an admin action that was waiting for the password
func (h *Handler) resume(c tele.Context, pending domain.PendingAction, id int64) error {
	switch pending {
	case domain.PendingAdd:
		return h.handleAdd(c)
	case domain.PendingEdit:
		return h.startEdit(c, id)
	case domain.PendingDelete:
		return h.confirmDelete(c, id)
	case domain.PendingExport:
		return h.handleExport(c)
	case domain.PendingReload:
		return h.handleReload(c)
	}
	return h.showMainMenu(c)
}

// handleDraftWord stores the word and asks for the type
func (h *Handler) handleDraftWord(c tele.Context, state *domain.StateData, text string) error {
	draft := state.Draft
	if !(text == keepValue && !state.Target.IsNew()) {
		draft.Word = text
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:  domain.StateWaitingType,
		Target: state.Target,
		Draft:  draft,
	})

	return c.Send("Choose the type, or send v, n, adj or adv:", typeMarkup(!state.Target.IsNew()))
}

// handleDraftType accepts a typed type code
func (h *Handler) handleDraftType(c tele.Context, state *domain.StateData, text string) error {
	if text == keepValue && !state.Target.IsNew() {
		return h.setDraftType(c, state, state.Draft.Type)
	}

	t := domain.Type(strings.ToLower(text))
	if !t.IsKnown() {
		return c.Send("Please choose one of: v, n, adj, adv.", typeMarkup(!state.Target.IsNew()))
	}
	return h.setDraftType(c, state, t)
}

// setDraftType stores the type and asks for the definition
func (h *Handler) setDraftType(c tele.Context, state *domain.StateData, t domain.Type) error {
	draft := state.Draft
	draft.Type = t

	h.SetState(c.Sender().ID, &domain.StateData{
		State:  domain.StateWaitingDefinition,
		Target: state.Target,
		Draft:  draft,
	})

	prompt := "Send the Myanmar definition:"
	if !state.Target.IsNew() {
		prompt = "Send the new definition, or \"-\" to keep the current one:"
	}
	return c.Send(prompt, cancelMarkup())
}

// handleDraftDefinition stores the definition and saves the draft
func (h *Handler) handleDraftDefinition(c tele.Context, state *domain.StateData, text string) error {
	draft := state.Draft
	if !(text == keepValue && !state.Target.IsNew()) {
		draft.Definition = text
	}
	return h.saveDraft(c, state.Target, draft)
}
