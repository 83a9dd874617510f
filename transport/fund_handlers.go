package transport

import (
	"encoding/json"
	"net/http"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/gorilla/mux"
)

// CreateFund handler
// @Summary Create fund
// @Tags Fund
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.FundInsertRequest true "Fund"
// @Success 200 {object} model.Response
// @Router /api/v1/fund/create [post]
func (s *RestHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var req model.FundInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.FundApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateFund handler
// @Summary Update fund
// @Tags Fund
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "fund id"
// @Param request body model.FundInsertRequest true "Fund"
// @Success 200 {object} model.Response
// @Router /api/v1/fund/update/{id} [put]
func (s *RestHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	var req model.FundInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.FundApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteFund handler
// @Summary Soft-delete fund
// @Tags Fund
// @Security BearerAuth
// @Param id path string true "fund id"
// @Success 200 {object} model.Response
// @Router /api/v1/fund/delete/{id} [delete]
func (s *RestHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	id, err := s.FundApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetFunds handler
// @Summary List funds
// @Tags Fund
// @Security BearerAuth
// @Produce json
// @Param building_id query string false "building filter"
// @Param fund_name query string false "name filter"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/fund/get [get]
func (s *RestHandler) GetFunds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.FundFilter{
		BuildingID: q.Get("building_id"),
		FundName:   q.Get("fund_name"),
		Status:     statusParam(q),
	}

	list, err := s.FundApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetFundByID handler
// @Summary Get fund by id
// @Tags Fund
// @Security BearerAuth
// @Produce json
// @Param id path string true "fund id"
// @Success 200 {object} model.Response
// @Router /api/v1/fund/get/{id} [get]
func (s *RestHandler) GetFundByID(w http.ResponseWriter, r *http.Request) {
	fund, err := s.FundApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, fund)
}
