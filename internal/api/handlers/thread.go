package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/api/middleware"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/service"
)

type ThreadHandler struct {
	threadService *service.ThreadService
}

func NewThreadHandler(threadService *service.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// PostThreadRequest is the inbound thread payload. The author comes from
// the verified token, not the body; id and datetime are server-assigned.
type PostThreadRequest struct {
	ThreadReplyThreadID *uuid.UUID `json:"threadReplyThreadId"`
	ThreadContent       string     `json:"threadContent"`
	ThreadImageURL      *string    `json:"threadImageUrl"`
}

type PostThreadResponse struct {
	Message string         `json:"message"`
	Thread  *domain.Thread `json:"thread"`
}

func (h *ThreadHandler) Post(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req PostThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	thread, msg, err := h.threadService.Post(r.Context(), service.PostThreadInput{
		ThreadProfileID:     profileID,
		ThreadReplyThreadID: req.ThreadReplyThreadID,
		ThreadContent:       req.ThreadContent,
		ThreadImageURL:      req.ThreadImageURL,
	})
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, domain.ErrThreadNotFound) {
			http.Error(w, "Reply target does not exist", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [thread.Post] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, PostThreadResponse{Message: msg, Thread: thread})
}

func (h *ThreadHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	threads, err := h.threadService.All(r.Context())
	if err != nil {
		log.Printf("ERROR [thread.GetAll] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeThreads(w, threads)
}

func (h *ThreadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	threadID, err := uuid.Parse(chi.URLParam(r, "threadId"))
	if err != nil {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}

	thread, err := h.threadService.ByID(r.Context(), threadID)
	if err != nil {
		log.Printf("ERROR [thread.GetByID] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if thread == nil {
		http.Error(w, "Thread not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, thread)
}

func (h *ThreadHandler) GetByProfileName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "profileName")

	threads, err := h.threadService.ByProfileName(r.Context(), name)
	if err != nil {
		log.Printf("ERROR [thread.GetByProfileName] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeThreads(w, threads)
}

func (h *ThreadHandler) GetByProfileID(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}

	threads, err := h.threadService.ByProfileID(r.Context(), profileID)
	if err != nil {
		log.Printf("ERROR [thread.GetByProfileID] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeThreads(w, threads)
}

// GetReplies returns the thread and every reply beneath it, at any depth.
func (h *ThreadHandler) GetReplies(w http.ResponseWriter, r *http.Request) {
	threadID, err := uuid.Parse(chi.URLParam(r, "threadId"))
	if err != nil {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}

	threads, err := h.threadService.ReplyTree(r.Context(), threadID)
	if err != nil {
		log.Printf("ERROR [thread.GetReplies] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeThreads(w, threads)
}

func (h *ThreadHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "Invalid page number", http.StatusBadRequest)
		return
	}

	threads, err := h.threadService.Page(r.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPage) {
			http.Error(w, "Page number must be 1 or greater", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [thread.GetPage] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeThreads(w, threads)
}

func (h *ThreadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	threadID, err := uuid.Parse(chi.URLParam(r, "threadId"))
	if err != nil {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}

	msg, err := h.threadService.Delete(r.Context(), profileID, threadID)
	if err != nil {
		if errors.Is(err, domain.ErrNotThreadAuthor) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		log.Printf("ERROR [thread.Delete] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

func writeThreads(w http.ResponseWriter, threads []domain.Thread) {
	if threads == nil {
		threads = []domain.Thread{}
	}
	writeJSON(w, http.StatusOK, threads)
}
