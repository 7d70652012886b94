package apiserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plantworks/plantworks/internal/logging"
)

// Fixed apologies returned with HTTP 200 so chat clients always receive a
// renderable reply.
const (
	chatEmptyReply = "Sorry, I could not process your request."
	chatErrorReply = "An error occurred while processing your request."
)

// ChatRequest is the /chat request body.
type ChatRequest struct {
	Query     string `json:"query"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the /chat response body.
type ChatResponse struct {
	Response string `json:"response"`
}

// handleChat receives a query and returns the coordinator's response.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleBadRequest(w, "invalid request body")
		return
	}
	if req.UserID == "" {
		req.UserID = "web_user"
	}
	if req.SessionID == "" {
		req.SessionID = "web_session"
	}

	sess := s.sessions.GetOrCreate(req.UserID, req.SessionID)
	s.logger.InfoWithFields("received chat query",
		logging.Field("user_id", req.UserID),
		logging.Field("session_id", req.SessionID),
		logging.Field("session", sess.ID))

	response := s.respond(r.Context(), req.Query)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, ChatResponse{Response: response})
}

// respond runs the coordinator and folds any failure into a fixed apology.
// The chat contract is HTTP 200 with a text reply in all cases.
func (s *Server) respond(ctx context.Context, query string) (response string) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("coordinator panicked: %v", rec)
			response = chatErrorReply
		}
	}()

	response = s.coordinator.Respond(ctx, query)
	if response == "" {
		response = chatEmptyReply
	}
	return response
}
