package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-data/internal/app"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) grantShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, secureDataID, userID, ok := shareParams(w, r)
	if !ok {
		return
	}

	if err := h.services.SharesService.Grant(ctx, ownerID, secureDataID, userID); err != nil {
		log.Err(err).Str("func", "*Handler.grantShare").Msg("error granting access")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, secureDataID, userID, ok := shareParams(w, r)
	if !ok {
		return
	}

	if err := h.services.SharesService.Revoke(ctx, ownerID, secureDataID, userID); err != nil {
		log.Err(err).Str("func", "*Handler.revokeShare").Msg("error revoking access")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// shareParams reads the acting owner from the context and the record and
// grantee from the path. It answers the request itself when one is missing.
func shareParams(w http.ResponseWriter, r *http.Request) (ownerID, secureDataID, userID uuid.UUID, ok bool) {
	log := logger.FromRequest(r)

	ownerID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "shareParams").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	secureDataID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "shareParams").Msg("invalid secure data id")
		http.Error(w, app.MsgInvalidRecordID, http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	userID, err = uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		log.Err(err).Str("func", "shareParams").Msg("invalid user id")
		http.Error(w, app.MsgInvalidRecordID, http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return ownerID, secureDataID, userID, true
}
