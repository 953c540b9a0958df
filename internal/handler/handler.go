package handler

import (
	"sync"
	"time"

	"lawlex/internal/domain"
	"lawlex/internal/middleware"
	"lawlex/internal/search"
	"lawlex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Notice lifetimes
const (
	successNoticeTTL = 3 * time.Second
	errorNoticeTTL   = 5 * time.Second
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	glossary    *service.GlossaryService
	debouncer   *search.Debouncer
	pageSize    int
	logger      *zap.Logger

	// flash sends a notice that removes itself after ttl
	flash func(c tele.Context, text string, ttl time.Duration) error

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	glossary *service.GlossaryService,
	debouncer *search.Debouncer,
	pageSize int,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:         bot,
		authService: authService,
		glossary:    glossary,
		debouncer:   debouncer,
		pageSize:    pageSize,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
	h.flash = h.sendNotice
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	adminOnly := middleware.AdminOnly(h.authService, h.logger, h.promptPasswordForCommand)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/logout", h.handleLogout)
	h.bot.Handle("/add", h.handleAdd, adminOnly)
	h.bot.Handle("/export", h.handleExport, adminOnly)
	h.bot.Handle("/reload", h.handleReload, adminOnly)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline mode suggestions
	h.bot.Handle(tele.OnQuery, h.handleInlineQuery)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnBrowse, h.handleBrowse)
	h.bot.Handle(&btnFilter, h.handleFilter)
	h.bot.Handle(&btnReset, h.handleReset)
	h.bot.Handle(&btnResults, h.handleBrowse)
	h.bot.Handle(&btnAdd, h.handleAdd, adminOnly)
	h.bot.Handle(&btnExport, h.handleExport, adminOnly)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// sendNotice sends text and deletes it once ttl has passed
func (h *Handler) sendNotice(c tele.Context, text string, ttl time.Duration) error {
	msg, err := h.bot.Send(c.Recipient(), text)
	if err != nil {
		return err
	}
	time.AfterFunc(ttl, func() {
		if err := h.bot.Delete(msg); err != nil {
			h.logger.Debug("Failed to delete notice", zap.Error(err))
		}
	})
	return nil
}

// show edits the callback message in place, or sends a new one for commands and text
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	return h.present(c, text, markup, nil)
}

// present is show with an optional callback answer
func (h *Handler) present(c tele.Context, text string, markup *tele.ReplyMarkup, resp *tele.CallbackResponse) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	userID := c.Sender().ID
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	if resp == nil {
		return c.Respond()
	}
	return c.Respond(resp)
}
