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

// CreateVisitor handler
// @Summary Create visit request
// @Tags Visitor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.VisitorInsertRequest true "Visitor"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/create [post]
func (s *RestHandler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var req model.VisitorInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.VisitorApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateVisitor handler
// @Summary Update visit request
// @Tags Visitor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "visitor id"
// @Param request body model.VisitorInsertRequest true "Visitor"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/update/{id} [put]
func (s *RestHandler) UpdateVisitor(w http.ResponseWriter, r *http.Request) {
	var req model.VisitorInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.VisitorApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteVisitor handler
// @Summary Soft-delete visit request
// @Tags Visitor
// @Security BearerAuth
// @Param id path string true "visitor id"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/delete/{id} [delete]
func (s *RestHandler) DeleteVisitor(w http.ResponseWriter, r *http.Request) {
	id, err := s.VisitorApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetVisitors handler
// @Summary List visit requests
// @Tags Visitor
// @Security BearerAuth
// @Produce json
// @Param room_id query string false "room filter"
// @Param full_name query string false "name filter"
// @Param building_id query string false "building filter"
// @Param time query string false "RFC3339 instant inside the visit window"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/get [get]
func (s *RestHandler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.VisitorFilter{
		RoomID:     q.Get("room_id"),
		FullName:   q.Get("full_name"),
		BuildingID: q.Get("building_id"),
		Time:       timeParam(q, "time"),
		Status:     statusParam(q),
	}

	list, err := s.VisitorApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetVisitorByID handler
// @Summary Get visit request by id
// @Tags Visitor
// @Security BearerAuth
// @Produce json
// @Param id path string true "visitor id"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/get/{id} [get]
func (s *RestHandler) GetVisitorByID(w http.ResponseWriter, r *http.Request) {
	visitor, err := s.VisitorApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, visitor)
}

// ManageVisitor approves or rejects a visit request.
// @Summary Approve or reject visit request
// @Tags Visitor
// @Security BearerAuth
// @Produce json
// @Param id path string true "visitor id"
// @Param status query int true "3 approve, 4 reject"
// @Success 200 {object} model.Response
// @Router /api/v1/visitor/manage/{id} [put]
func (s *RestHandler) ManageVisitor(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "status is required"))
		return
	}

	id, err := s.VisitorApp.Manage(r.Context(), mux.Vars(r)["id"], constant.Status(status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}
