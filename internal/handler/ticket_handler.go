package handler

import (
	"net/http"

	"fsanano/train-booking/internal/model"
	"fsanano/train-booking/internal/service"

	"go.uber.org/zap"
)

type TicketHandler struct {
	svc *service.TicketService
	log *zap.Logger
}

func NewTicketHandler(svc *service.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{svc: svc, log: log}
}

type CreateTicketRequest struct {
	UserID  int64 `json:"user_id"`
	TrainID int64 `json:"train_id"`
}

// UpdateTicketRequest carries the user and train the ticket moves to.
type UpdateTicketRequest struct {
	User  *model.User  `json:"user"`
	Train *model.Train `json:"train"`
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.svc.GetAllTickets(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ticket, err := h.svc.GetTicketByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if ticket == nil {
		writeMessage(w, http.StatusNotFound, "ticket not found")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID <= 0 || req.TrainID <= 0 {
		writeMessage(w, http.StatusBadRequest, "user_id and train_id are required")
		return
	}

	ticket, err := h.svc.CreateTicket(r.Context(), req.UserID, req.TrainID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.Info("ticket booked",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("user_id", req.UserID),
		zap.Int64("train_id", req.TrainID),
		zap.Float64("final_price", ticket.FinalPrice),
	)
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req UpdateTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.User == nil || req.Train == nil {
		writeMessage(w, http.StatusBadRequest, "user and train are required")
		return
	}

	ticket, err := h.svc.UpdateTicket(r.Context(), id, model.Ticket{User: req.User, Train: req.Train})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTicket(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
