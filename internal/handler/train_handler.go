package handler

import (
	"net/http"

	"fsanano/train-booking/internal/model"
	"fsanano/train-booking/internal/service"

	"go.uber.org/zap"
)

type TrainHandler struct {
	svc *service.TrainService
	log *zap.Logger
}

func NewTrainHandler(svc *service.TrainService, log *zap.Logger) *TrainHandler {
	return &TrainHandler{svc: svc, log: log}
}

func (h *TrainHandler) List(w http.ResponseWriter, r *http.Request) {
	trains, err := h.svc.GetAllTrains(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if trains == nil {
		trains = []model.Train{}
	}
	writeJSON(w, http.StatusOK, trains)
}

func (h *TrainHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	train, err := h.svc.GetTrainByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if train == nil {
		writeMessage(w, http.StatusNotFound, "train not found")
		return
	}
	writeJSON(w, http.StatusOK, train)
}

func (h *TrainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Train
	if !decodeBody(w, r, &req) {
		return
	}

	train, err := h.svc.CreateTrain(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, train)
}

func (h *TrainHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req model.Train
	if !decodeBody(w, r, &req) {
		return
	}

	train, err := h.svc.UpdateTrain(r.Context(), id, req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, train)
}

func (h *TrainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTrain(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
