package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SuyashSrivastava1/ReadAble/internal/db"
	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/server/middleware"
	"github.com/SuyashSrivastava1/ReadAble/internal/simplify"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "service": "ReadAble API"})
}

// handleProfiles lists the reading profile catalog
func (s *Server) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": profiles.All()})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.errorResponse(w, http.StatusNotFound, MessageRouteNotFound)
}

// handleSimplify simplifies text and, for signed-in users, records it in history
func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	var req types.SimplifyRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	text, err := ingestion.StripMarkup(req.Text)
	if err != nil {
		s.fail(w, r, badRequest(MessageTextNotString))
		return
	}
	req.Text = text
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.fail(w, r, badRequest(types.ValidationMessage(err)))
		return
	}

	profile := req.Profile()
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	result := s.service.Simplify(ctx, req.Text, profile)
	cancel()
	resp := simplify.Respond(req.Text, profile, result)

	if userID, ok := s.historyUser(r); ok {
		entry := db.NewHistoryEntry(userID, req.Text, resp)
		if err := s.store.SaveHistory(r.Context(), entry); err != nil {
			s.fail(w, r, fmt.Errorf("saving history: %w", err))
			return
		}
		id := entry.ID.String()
		resp.HistoryID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTranslate translates text and attaches the result to a history entry when asked
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req types.TranslateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	text, err := ingestion.StripMarkup(req.Text)
	if err != nil {
		s.fail(w, r, badRequest(MessageTextNotString))
		return
	}
	req.Text = text
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.fail(w, r, badRequest(types.ValidationMessage(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	translated := s.service.Translate(ctx, req.Text, req.TargetLanguage)
	cancel()

	if userID, ok := s.historyUser(r); ok && req.HistoryID != "" {
		// Validate already checked the format
		historyID := uuid.MustParse(req.HistoryID)
		err := s.store.SaveTranslation(r.Context(), userID, historyID, req.TargetLanguage, translated)
		switch {
		case errors.Is(err, db.ErrNotFound):
			s.logger.Debug("translation for unknown history entry", zap.String("history_id", req.HistoryID))
		case err != nil:
			s.fail(w, r, fmt.Errorf("saving translation: %w", err))
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, types.TranslateResponse{
		Translated:     translated,
		TargetLanguage: req.TargetLanguage,
	})
}

// handleListHistory returns the caller's recent simplifications
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	entries, err := s.store.ListHistory(r.Context(), userID, db.MaxHistory)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"history": entries})
}

// handleDeleteHistory removes one of the caller's history entries
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id := r.PathValue("id")
	historyID, err := uuid.Parse(id)
	if err != nil {
		s.fail(w, r, badRequest(MessageInvalidHistoryID))
		return
	}

	if err := s.store.DeleteHistory(r.Context(), userID, historyID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.fail(w, r, &HTTPError{Status: http.StatusNotFound, Message: MessageHistoryNotFound})
			return
		}
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": MessageHistoryDeleted, "id": id})
}

// historyUser returns the signed-in user when history is enabled
func (s *Server) historyUser(r *http.Request) (uuid.UUID, bool) {
	if s.store == nil {
		return uuid.Nil, false
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// decode reads a JSON request body into dst
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "text" {
			return badRequest(MessageTextNotString)
		}
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			return &HTTPError{Status: http.StatusRequestEntityTooLarge, Message: "Request body is too large", Cause: err}
		}
		return &HTTPError{Status: http.StatusBadRequest, Message: MessageInvalidJSON, Cause: err}
	}
	return nil
}
