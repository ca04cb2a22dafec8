package httpapi

import (
	"net/http"
	"strings"
)

// inboundMessage handles one provider webhook delivery. The provider
// posts form-encoded From (stable channel identifier) and Body (raw
// message text) fields and expects a TwiML document back.
func (s *Server) inboundMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "malformed form body")
		return
	}
	from := strings.TrimSpace(r.PostFormValue("From"))
	body := r.PostFormValue("Body")
	if from == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "From is required")
		return
	}

	reply, err := s.conversationSvc.HandleMessage(r.Context(), from, body)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", from).Msg("message handling failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "message could not be processed")
		return
	}

	payload, err := s.renderer.Render(reply)
	if err != nil {
		s.logger.Error().Err(err).Msg("reply rendering failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "reply could not be rendered")
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
