package transport

import (
	"encoding/json"
	"net/http"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/gorilla/mux"
)

// CreateParkingCard handler
// @Summary Create parking card request
// @Tags ParkingCard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ParkingCardInsertRequest true "Parking card"
// @Success 200 {object} model.Response
// @Router /api/v1/parking-card/create [post]
func (s *RestHandler) CreateParkingCard(w http.ResponseWriter, r *http.Request) {
	var req model.ParkingCardInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ParkingCardApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateParkingCard handler
// @Summary Update parking card
// @Tags ParkingCard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "card id"
// @Param request body model.ParkingCardEditRequest true "Parking card"
// @Success 200 {object} model.Response
// @Router /api/v1/parking-card/update/{id} [put]
func (s *RestHandler) UpdateParkingCard(w http.ResponseWriter, r *http.Request) {
	var req model.ParkingCardEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ParkingCardApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteParkingCard handler
// @Summary Soft-delete parking card
// @Tags ParkingCard
// @Security BearerAuth
// @Param id path string true "card id"
// @Success 200 {object} model.Response
// @Router /api/v1/parking-card/delete/{id} [delete]
func (s *RestHandler) DeleteParkingCard(w http.ResponseWriter, r *http.Request) {
	id, err := s.ParkingCardApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetParkingCards handler
// @Summary List parking cards
// @Tags ParkingCard
// @Security BearerAuth
// @Produce json
// @Param resident_id query string false "resident filter"
// @Param license_plate query string false "plate filter"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/parking-card/get [get]
func (s *RestHandler) GetParkingCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ParkingCardFilter{
		ResidentID:   q.Get("resident_id"),
		LicensePlate: q.Get("license_plate"),
		Status:       statusParam(q),
	}

	list, err := s.ParkingCardApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetParkingCardByID handler
// @Summary Get parking card by id
// @Tags ParkingCard
// @Security BearerAuth
// @Produce json
// @Param id path string true "card id"
// @Success 200 {object} model.Response
// @Router /api/v1/parking-card/get/{id} [get]
func (s *RestHandler) GetParkingCardByID(w http.ResponseWriter, r *http.Request) {
	card, err := s.ParkingCardApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, card)
}
