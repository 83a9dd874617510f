package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/gorilla/mux"
)

// CreateConstruction handler
// @Summary Create construction request
// @Tags Construction
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ConstructionInsertRequest true "Construction"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/create [post]
func (s *RestHandler) CreateConstruction(w http.ResponseWriter, r *http.Request) {
	var req model.ConstructionInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ConstructionApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateConstruction handler
// @Summary Update construction request
// @Tags Construction
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "construction id"
// @Param request body model.ConstructionInsertRequest true "Construction"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/update/{id} [put]
func (s *RestHandler) UpdateConstruction(w http.ResponseWriter, r *http.Request) {
	var req model.ConstructionInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ConstructionApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteConstruction handler
// @Summary Soft-delete construction request
// @Tags Construction
// @Security BearerAuth
// @Param id path string true "construction id"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/delete/{id} [delete]
func (s *RestHandler) DeleteConstruction(w http.ResponseWriter, r *http.Request) {
	id, err := s.ConstructionApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetConstructions handler
// @Summary List construction requests
// @Tags Construction
// @Security BearerAuth
// @Produce json
// @Param room_id query string false "room filter"
// @Param name query string false "name filter"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/get [get]
func (s *RestHandler) GetConstructions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ConstructionFilter{
		RoomID: q.Get("room_id"),
		Name:   q.Get("name"),
		Status: statusParam(q),
	}

	list, err := s.ConstructionApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetConstructionByID handler
// @Summary Get construction request by id
// @Tags Construction
// @Security BearerAuth
// @Produce json
// @Param id path string true "construction id"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/get/{id} [get]
func (s *RestHandler) GetConstructionByID(w http.ResponseWriter, r *http.Request) {
	construction, err := s.ConstructionApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, construction)
}

// ManageConstruction approves or rejects a construction request.
// @Summary Approve or reject construction request
// @Tags Construction
// @Security BearerAuth
// @Produce json
// @Param id path string true "construction id"
// @Param status query int true "3 approve, 4 reject"
// @Success 200 {object} model.Response
// @Router /api/v1/construction/manage/{id} [put]
func (s *RestHandler) ManageConstruction(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "status is required"))
		return
	}

	id, err := s.ConstructionApp.Manage(r.Context(), mux.Vars(r)["id"], constant.Status(status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}
