package handler

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleInlineQuery answers inline mode queries with live suggestions.
// Rapid keystrokes from one user are debounced into a single answer.
func (h *Handler) handleInlineQuery(c tele.Context) error {
	query := c.Query()
	if query == nil {
		return nil
	}

	userID := c.Sender().ID
	text := query.Text
	h.debouncer.Do(strconv.FormatInt(userID, 10), func() {
		if err := h.answerSuggestions(c, text); err != nil {
			h.logger.Warn("Failed to answer inline query",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
		}
	})
	return nil
}

// answerSuggestions sends at most five matching terms as article results
func (h *Handler) answerSuggestions(c tele.Context, text string) error {
	suggestions, err := h.glossary.Suggest(text)
	if err != nil {
		h.logger.Debug("Suggestions unavailable", zap.Error(err))
	}

	results := make(tele.Results, 0, len(suggestions))
	for _, s := range suggestions {
		entry, err := h.glossary.Term(s.ID)
		if err != nil {
			continue
		}

		result := &tele.ArticleResult{
			Title:       fmt.Sprintf("%s (%s)", s.Word, typeBadge(s.Type)),
			Description: s.Preview,
			Text:        termCard(entry.Term),
		}
		result.SetResultID(strconv.FormatInt(s.ID, 10))
		results = append(results, result)
	}

	return c.Answer(&tele.QueryResponse{
		Results:    results,
		CacheTime:  0,
		IsPersonal: true,
	})
}
