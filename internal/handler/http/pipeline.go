// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-secure-data/internal/app"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/utils"
	"github.com/MKhiriev/go-secure-data/models"
)

// execute runs one pipeline event for the authenticated user and answers
// with the event as the handlers left it, so the host can apply the
// rewritten Target or BusinessEntity.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.execute").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var event models.PipelineEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Err(err).Str("func", "*Handler.execute").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	// the token decides who acts, whatever the body says
	event.UserID = userID

	if err := h.services.PipelineService.Execute(ctx, &event); err != nil {
		log.Err(err).
			Str("func", "*Handler.execute").
			Int("stage", event.Stage).
			Str("message", event.MessageName).
			Str("entity", event.PrimaryEntityName).
			Msg("pipeline event failed")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, event, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.execute").Msg("failed to write response")
	}
}
