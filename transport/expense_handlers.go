package transport

import (
	"encoding/json"
	"net/http"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/gorilla/mux"
)

// CreateExpense handler
// @Summary Create expense
// @Tags Expense
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ExpenseInsertRequest true "Expense"
// @Success 200 {object} model.Response
// @Router /api/v1/expense/create [post]
func (s *RestHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req model.ExpenseInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ExpenseApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// UpdateExpense handler
// @Summary Update expense
// @Tags Expense
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "expense id"
// @Param request body model.ExpenseInsertRequest true "Expense"
// @Success 200 {object} model.Response
// @Router /api/v1/expense/update/{id} [put]
func (s *RestHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req model.ExpenseInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ExpenseApp.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// DeleteExpense handler
// @Summary Soft-delete expense
// @Tags Expense
// @Security BearerAuth
// @Param id path string true "expense id"
// @Success 200 {object} model.Response
// @Router /api/v1/expense/delete/{id} [delete]
func (s *RestHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := s.ExpenseApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, id)
}

// GetExpenses handler
// @Summary List expenses
// @Tags Expense
// @Security BearerAuth
// @Produce json
// @Param building_id query string false "building filter"
// @Param expense_source query string false "source filter"
// @Param status query int false "status filter"
// @Success 200 {object} model.Response
// @Router /api/v1/expense/get [get]
func (s *RestHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ExpenseFilter{
		BuildingID:    q.Get("building_id"),
		ExpenseSource: q.Get("expense_source"),
		Status:        statusParam(q),
	}

	list, err := s.ExpenseApp.Get(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, list, len(list))
}

// GetExpenseByID handler
// @Summary Get expense by id
// @Tags Expense
// @Security BearerAuth
// @Produce json
// @Param id path string true "expense id"
// @Success 200 {object} model.Response
// @Router /api/v1/expense/get/{id} [get]
func (s *RestHandler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	expense, err := s.ExpenseApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, expense)
}
