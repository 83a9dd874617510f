package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
)

// Login handler
// @Summary Login with phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Router /api/v1/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LoginWithEmail handler
// @Summary Login with email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginWithEmailRequest true "Login Request"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Router /api/v1/login/email [post]
func (s *RestHandler) LoginWithEmail(w http.ResponseWriter, r *http.Request) {
	var req model.LoginWithEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.LoginWithEmail(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout invalidates the current token's session.
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} model.Response
// @Router /api/v1/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.AuthApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ImportAccounts bulk-creates accounts from an uploaded xlsx file.
// @Summary Import accounts from spreadsheet
// @Tags Account
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "xlsx file"
// @Param role query int true "role for every imported account"
// @Param building_id query string true "building for every imported account"
// @Success 200 {object} model.Response
// @Router /api/v1/account/import [post]
func (s *RestHandler) ImportAccounts(w http.ResponseWriter, r *http.Request) {
	role, err := strconv.Atoi(r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "role is required"))
		return
	}
	buildingID := r.URL.Query().Get("building_id")
	if buildingID == "" {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "building_id is required"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "file not selected or empty"))
		return
	}
	defer file.Close()

	ids, err := s.AuthApp.ImportAccounts(r.Context(), file, role, buildingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, ids, len(ids))
}

// ExportAccounts streams the building's resident accounts as xlsx.
// @Summary Export resident accounts to spreadsheet
// @Tags Account
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param building_id query string true "building to export"
// @Success 200 {file} binary
// @Router /api/v1/account/export [get]
func (s *RestHandler) ExportAccounts(w http.ResponseWriter, r *http.Request) {
	buildingID := r.URL.Query().Get("building_id")
	if buildingID == "" {
		writeError(w, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "building_id is required"))
		return
	}

	data, err := s.AuthApp.ExportAccounts(r.Context(), buildingID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="accounts.xlsx"`)
	_, _ = w.Write(data)
}
