package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/errs"
	"github.com/danupratama/portfolio-backend/models"
	"github.com/danupratama/portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	notifier    *services.ContactNotifier
}

func newContactHandler(contactRepo *database.ContactRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitContact stores a contact message and, when configured, emails the
// site owner. Delivery failures don't fail the request: the row is saved.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		contact := models.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		if h.notifier != nil && h.notifier.Enabled() {
			go func(c models.Contact) {
				if err := h.notifier.NotifyContact(c); err != nil {
					h.logger.Error().Err(err).Msg("Failed to send contact notification")
				}
			}(contact)
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{
			"message": "Message sent successfully",
		})
	}
}

// getAllContacts lists every message, newest first. Admin-only.
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		serialized := make([]models.ContactResponse, 0, len(contacts))
		for _, contact := range contacts {
			serialized = append(serialized, contact.Response())
		}

		h.responder.WriteJSON(w, serialized)
	}
}

// markContactRead is idempotent, same contract as comment approval.
func (h contactHandler) markContactRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact not found"))
			return
		}

		if err := h.contactRepo.MarkRead(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Marked as read"})
	}
}
