package handler

import (
	"errors"
	"strings"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const genericErrorText = "Something went wrong. Please try again later."

// noticeFor maps an operation error to the text shown to the user
func (h *Handler) noticeFor(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "⚠️ " + validationText(verr)
	case errors.Is(err, domain.ErrNotFound):
		return "⚠️ This term no longer exists. Open it again from the results."
	case errors.Is(err, domain.ErrSuperseded):
		return "⏳ A newer reload is already in progress."
	case errors.Is(err, domain.ErrNotReady):
		if status, _ := h.glossary.Status(); status == catalog.StatusFailed {
			return "⚠️ Failed to load dictionary data. An admin can retry with /reload."
		}
		return "⏳ The dictionary is still loading. Please try again in a moment."
	case errors.Is(err, domain.ErrLoad):
		return "⚠️ Failed to load dictionary data. An admin can retry with /reload."
	}
	return genericErrorText
}

func validationText(verr *domain.ValidationError) string {
	fields := verr.Fields()
	switch len(fields) {
	case 0:
		return "The term is invalid."
	case 1:
		return "The " + fields[0] + " is required."
	}
	return "The " + strings.Join(fields, " and ") + " are required."
}

// notifyError reports err as an alert for button presses, or as a notice message otherwise
func (h *Handler) notifyError(c tele.Context, err error) error {
	text := h.noticeFor(err)
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return h.flash(c, text, errorNoticeTTL)
}

// showWithNotice shows text after a completed action, with notice as a toast or a short lived message
func (h *Handler) showWithNotice(c tele.Context, notice, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		return h.present(c, text, markup, &tele.CallbackResponse{Text: notice})
	}
	if err := h.flash(c, notice, successNoticeTTL); err != nil {
		h.logger.Warn("Failed to send notice", zap.Error(err))
	}
	return c.Send(text, markup)
}
