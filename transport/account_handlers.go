package transport

import (
	"encoding/json"
	"net/http"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/gorilla/mux"
)

// CreateAccount handler
// @Summary Create account
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.AccountInsertRequest true "Account"
// @Success 200 {object} model.Response
// @Router /api/v1/account/create [post]
func (s *RestHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.AccountInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AccountApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateAccount handler
// @Summary Update account
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "account id"
// @Param request body model.AccountUpdateRequest true "Account"
// @Success 200 {object} model.Response
// @Router /api/v1/account/update/{id} [put]
func (s *RestHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.AccountUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AccountApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteAccount handler
// @Summary Soft-delete account
// @Tags Account
// @Security BearerAuth
// @Param id path string true "account id"
// @Success 200 {object} model.Response
// @Router /api/v1/account/delete/{id} [delete]
func (s *RestHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := s.AccountApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetAccounts handler
// @Summary List accounts
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Param search query string false "free text over phone/email/name"
// @Param building_id query string false "building filter"
// @Param role query int false "role filter"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/account/get [get]
func (s *RestHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.AccountFilter{
		SearchTerm: q.Get("search"),
		BuildingID: q.Get("building_id"),
		Role:       intParam(q, "role"),
		Status:     statusParam(q),
	}

	list, err := s.AccountApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetAccountByID handler
// @Summary Get account by id
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Param id path string true "account id"
// @Success 200 {object} model.Response
// @Router /api/v1/account/get/{id} [get]
func (s *RestHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	account, err := s.AccountApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, account)
}
