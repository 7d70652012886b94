package apiserver

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// webhookEvent is the messaging-platform delivery payload. Only the fields
// needed to extract per-sender text are modeled.
type webhookEvent struct {
	Object string `json:"object"`
	Entry  []struct {
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// sendPayload is the outbound send-API request body.
type sendPayload struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

// handleWebhook dispatches the verification handshake and message delivery.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleWebhookVerify(w, r)
	case http.MethodPost:
		s.handleWebhookDelivery(w, r)
	default:
		s.handleMethodNotAllowed(w, r)
	}
}

// handleWebhookVerify answers the platform's subscription handshake by
// echoing hub.challenge when the verify token matches.
func (s *Server) handleWebhookVerify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "subscribe" && token == s.webhookCfg.VerifyToken {
		s.logger.Info("Webhook verified")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}

	s.logger.Warn("Webhook verification failed (mode=%q)", mode)
	w.WriteHeader(http.StatusForbidden)
}

// handleWebhookDelivery validates the payload signature, then runs each
// delivered message through the coordinator and relays the reply.
func (s *Server) handleWebhookDelivery(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.handleBadRequest(w, "failed to read request body")
		return
	}

	if !s.verifySignature(body, r.Header.Get("X-Hub-Signature")) {
		s.logger.Warn("Webhook signature mismatch")
		s.handleBadRequest(w, "invalid signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.handleBadRequest(w, "invalid payload")
		return
	}

	for _, entry := range event.Entry {
		for _, msg := range entry.Messaging {
			if msg.Message.Text == "" || msg.Sender.ID == "" {
				continue
			}
			s.logger.Info("Webhook message from %s: %s", msg.Sender.ID, msg.Message.Text)

			sess := s.sessions.GetOrCreate(msg.Sender.ID, "webhook")
			s.logger.Debug("using session %s", sess.ID)

			reply := s.respond(r.Context(), msg.Message.Text)
			if err := s.sendReply(msg.Sender.ID, reply); err != nil {
				s.logger.Error("Failed to relay reply to %s: %v", msg.Sender.ID, err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, map[string]string{"status": "ok"})
}

// verifySignature checks the HMAC-SHA1 of the raw body against the
// X-Hub-Signature header ("sha1=<hex>").
func (s *Server) verifySignature(body []byte, header string) bool {
	mac := hmac.New(sha1.New, []byte(s.webhookCfg.AppSecret))
	mac.Write(body)
	expected := "sha1=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}

// sendReply posts the reply through the platform send API. With no send
// URL configured the reply is logged only, which keeps local runs and the
// demo self-contained.
func (s *Server) sendReply(recipientID, text string) error {
	if s.webhookCfg.SendAPIURL == "" {
		s.logger.Info("Send API not configured, reply to %s: %s", recipientID, text)
		return nil
	}

	var payload sendPayload
	payload.Recipient.ID = recipientID
	payload.Message.Text = text

	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal send payload: %w", err)
	}

	endpoint := s.webhookCfg.SendAPIURL
	if s.webhookCfg.PageToken != "" {
		endpoint += "?access_token=" + url.QueryEscape(s.webhookCfg.PageToken)
	}

	resp, err := s.sendClient.Post(endpoint, "application/json", bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("send API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send API returned status %d", resp.StatusCode)
	}
	return nil
}
