package handler

import (
	"context"

	"github.com/shopmart/shopmart/internal/middleware"
	"github.com/shopmart/shopmart/internal/models"
)

// getAuthPayload extracts the authorization token payload from context
func getAuthPayload(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(middleware.AuthPayloadKey).(*models.TokenPayload)
	return payload, ok
}
