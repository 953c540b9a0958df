package middleware

import (
	"lawlex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly creates middleware that lets authorized admins through.
// Anyone else is handed to deny, which usually asks for the password.
func AdminOnly(authService *service.AuthService, logger *zap.Logger, deny tele.HandlerFunc) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware",
					zap.Error(err),
					zap.Int64("user_id", userID),
				)
				return c.Send("Something went wrong. Please try again later.")
			}

			if !authorized {
				logger.Info("Admin action requires password", zap.Int64("user_id", userID))
				return deny(c)
			}

			return next(c)
		}
	}
}
