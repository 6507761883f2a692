package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/pkg/apperr"
	"storefront/pkg/utils"
)

// writeServiceError maps a service error onto the response envelope.
// Client-fault kinds return their specific message; store and unknown
// errors log the cause and return a generic message.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.Conflict:
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, apperr.MessageOf(err), nil)

	case apperr.NotFound:
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, apperr.MessageOf(err))

	case apperr.Auth:
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, apperr.MessageOf(err))

	case apperr.Forbidden:
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, apperr.MessageOf(err))

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
