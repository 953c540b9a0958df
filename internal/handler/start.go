package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)
	return h.showMainMenu(c)
}

// showMainMenu shows the menu, or the load status while the dictionary is unavailable
func (h *Handler) showMainMenu(c tele.Context) error {
	view, err := h.glossary.Browse(c.Sender().ID)
	if err != nil {
		return h.show(c, h.noticeFor(err), mainMenuMarkup())
	}
	return h.show(c, mainMenuText(view.Total), mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.showMainMenu(c)
}

// handleLogout revokes admin access for the sender
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.authService.Logout(userID); err != nil {
		h.logger.Error("Failed to logout user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(genericErrorText)
	}

	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("🔒 Logged out. Admin actions will ask for the password again.")
}
