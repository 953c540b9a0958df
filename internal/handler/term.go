package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lawlex/internal/domain"
	"lawlex/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const reloadTimeout = time.Minute

// askPassword returns a handler that defers pending until the admin password is sent
func (h *Handler) askPassword(pending domain.PendingAction, id int64) tele.HandlerFunc {
	return func(c tele.Context) error {
		h.SetState(c.Sender().ID, &domain.StateData{
			State:   domain.StateWaitingPassword,
			Target:  domain.EditingTarget{ID: id},
			Pending: pending,
		})

		if c.Callback() != nil {
			if err := c.Respond(); err != nil {
				h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
			}
		}
		return c.Send("🔐 This action requires the admin password. Please send it:", cancelMarkup())
	}
}

// promptPasswordForCommand asks for the password on behalf of a command or static button
func (h *Handler) promptPasswordForCommand(c tele.Context) error {
	return h.askPassword(pendingFor(c), 0)(c)
}

// pendingFor names the admin action a command or static button requests
func pendingFor(c tele.Context) domain.PendingAction {
	var key string
	if cb := c.Callback(); cb != nil {
		key = cleanCallbackData(cb.Unique)
		if key == "" {
			key = cleanCallbackData(cb.Data)
		}
	} else if fields := strings.Fields(c.Text()); len(fields) > 0 {
		key = strings.TrimPrefix(fields[0], "/")
		key, _, _ = strings.Cut(key, "@")
	}

	switch key {
	case "add":
		return domain.PendingAdd
	case "export":
		return domain.PendingExport
	case "reload":
		return domain.PendingReload
	}
	return domain.PendingNone
}

// requireAdmin runs next for admins and asks everyone else for the password
func (h *Handler) requireAdmin(c tele.Context, pending domain.PendingAction, id int64, next tele.HandlerFunc) error {
	return middleware.AdminOnly(h.authService, h.logger, h.askPassword(pending, id))(next)(c)
}

// handleAdd starts the add term conversation
func (h *Handler) handleAdd(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return h.show(c, "➕ New term\n\nSend the English word or phrase:", cancelMarkup())
}

// startEdit starts the edit conversation for the term with id
func (h *Handler) startEdit(c tele.Context, id int64) error {
	entry, err := h.glossary.Term(id)
	if err != nil {
		return h.notifyError(c, err)
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:  domain.StateWaitingWord,
		Target: domain.EditingTarget{ID: id},
		Draft:  entry.Term,
	})

	text := fmt.Sprintf("✏️ Editing %q\n\nSend the new word, or \"-\" to keep it:", entry.Term.Word)
	return h.show(c, text, cancelMarkup())
}

// saveDraft adds or updates the drafted term. An empty type is inferred.
func (h *Handler) saveDraft(c tele.Context, target domain.EditingTarget, draft domain.Term) error {
	userID := c.Sender().ID

	if draft.Type == "" {
		draft.Type = domain.InferType(draft.Word, draft.Definition)
	}

	var (
		notice string
		err    error
	)
	if target.IsNew() {
		_, _, err = h.glossary.Add(userID, draft)
		notice = "✅ Term added successfully!"
	} else {
		_, _, err = h.glossary.Update(userID, target.ID, draft)
		notice = "✅ Term updated successfully!"
	}

	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			// Start over with what the user already entered
			h.SetState(userID, &domain.StateData{
				State:  domain.StateWaitingWord,
				Target: target,
				Draft:  draft,
			})
			if flashErr := h.flash(c, h.noticeFor(err), errorNoticeTTL); flashErr != nil {
				h.logger.Warn("Failed to send notice", zap.Error(flashErr))
			}
			return c.Send("Send the English word or phrase:", cancelMarkup())
		}

		h.logger.Warn("Failed to save term",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("term_id", target.ID),
		)
		h.ResetState(userID)
		return h.notifyError(c, err)
	}

	h.logger.Info("Term saved",
		zap.Int64("user_id", userID),
		zap.Int64("term_id", target.ID),
		zap.String("word", draft.Word),
	)
	h.ResetState(userID)

	view, err := h.glossary.Browse(userID)
	if err != nil {
		return h.notifyError(c, err)
	}
	text, markup := renderResults(view, 1, h.pageSize)
	return h.showWithNotice(c, notice, text, markup)
}

// confirmDelete asks before deleting the term with id
func (h *Handler) confirmDelete(c tele.Context, id int64) error {
	entry, err := h.glossary.Term(id)
	if err != nil {
		return h.notifyError(c, err)
	}

	text, markup := renderDeleteConfirm(entry)
	return h.show(c, text, markup)
}

// deleteTerm removes the term with id and shows the refreshed results
func (h *Handler) deleteTerm(c tele.Context, id int64) error {
	userID := c.Sender().ID

	term, view, err := h.glossary.Delete(userID, id)
	if err != nil {
		h.logger.Warn("Failed to delete term", zap.Error(err), zap.Int64("term_id", id))
		return h.notifyError(c, err)
	}

	h.logger.Info("Term deleted",
		zap.Int64("user_id", userID),
		zap.Int64("term_id", id),
		zap.String("word", term.Word),
	)

	text, markup := renderResults(view, 1, h.pageSize)
	return h.showWithNotice(c, "✅ Term deleted successfully!", text, markup)
}

// handleExport sends the current catalog as a JSON document
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID

	snapshot, err := h.glossary.Export()
	if err != nil {
		return h.notifyError(c, err)
	}

	h.logger.Info("Dictionary exported",
		zap.Int64("user_id", userID),
		zap.String("file_name", snapshot.FileName),
		zap.Int("count", snapshot.Count),
	)

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(snapshot.Data)),
		FileName: snapshot.FileName,
		MIME:     "application/json",
		Caption:  fmt.Sprintf("📤 Dictionary exported successfully! %d terms.", snapshot.Count),
	}
	return c.Send(doc)
}

// handleReload reloads the dictionary from its source
func (h *Handler) handleReload(c tele.Context) error {
	userID := c.Sender().ID

	if err := c.Send("⏳ Reloading dictionary..."); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	if err := h.glossary.Load(ctx); err != nil {
		h.logger.Error("Failed to reload dictionary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(h.noticeFor(err))
	}

	view, err := h.glossary.Browse(userID)
	if err != nil {
		return c.Send(h.noticeFor(err))
	}

	h.logger.Info("Dictionary reloaded", zap.Int64("user_id", userID), zap.Int("total", view.Total))
	return c.Send(fmt.Sprintf("✅ Dictionary reloaded: %d terms.", view.Total), mainMenuMarkup())
}
