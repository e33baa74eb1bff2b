package web

import (
	"encoding/json"
	"net/http"

	"github.com/Montsi0721/resturant-site/models"
	"github.com/Montsi0721/resturant-site/notify"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListMenu(r.Context())
	if err != nil {
		s.log.Error("fetch menu failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var input models.CreateReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Presence check only; a zero guest count counts as missing.
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.Date == "" || input.Time == "" || input.Guests == 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	reservation, err := s.store.CreateReservation(r.Context(), input)
	if err != nil {
		s.log.Error("create reservation failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input models.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.CustomerName == "" || input.CustomerEmail == "" || input.CustomerPhone == "" ||
		len(input.Items) == 0 || input.TotalAmount == 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	order, err := s.store.CreateOrder(r.Context(), input)
	if err != nil {
		s.log.Error("create order failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Fire-and-forget: the client gets its response no matter what happens
	// to the admin notifications. Send already logs failures.
	go func(o *models.Order) {
		_ = s.mail.Send(notify.OrderEmail(o, s.adminEmail))
		s.telegram.OrderAlert(o)
	}(order)

	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var input models.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	msg, err := s.store.CreateContactMessage(r.Context(), input)
	if err != nil {
		s.log.Error("save contact message failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Unlike orders, this response is gated on the mail outcome: the row is
	// already persisted, yet a failed send surfaces as a server error.
	if err := s.mail.Send(notify.ContactEmail(msg, s.adminEmail)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Your message has been sent successfully!",
	})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Password != s.adminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Invalid admin password",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admin access granted",
	})
}

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.store.ListReservations(r.Context())
	if err != nil {
		s.log.Error("fetch reservations failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.store.ListOrders(r.Context())
	if err != nil {
		s.log.Error("fetch orders failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.ListContactMessages(r.Context())
	if err != nil {
		s.log.Error("fetch contact messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
