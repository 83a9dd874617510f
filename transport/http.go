package transport

import (
	"net/http"

	accountapp "github.com/abmshq/abms-backend/application/account"
	authapp "github.com/abmshq/abms-backend/application/auth"
	constructionapp "github.com/abmshq/abms-backend/application/construction"
	expenseapp "github.com/abmshq/abms-backend/application/expense"
	fundapp "github.com/abmshq/abms-backend/application/fund"
	parkingcardapp "github.com/abmshq/abms-backend/application/parkingcard"
	visitorapp "github.com/abmshq/abms-backend/application/visitor"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp         authapp.AuthApp
	AccountApp      accountapp.AccountApp
	ParkingCardApp  parkingcardapp.ParkingCardApp
	VisitorApp      visitorapp.VisitorApp
	ConstructionApp constructionapp.ConstructionApp
	ExpenseApp      expenseapp.ExpenseApp
	FundApp         fundapp.FundApp
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/login/email", rh.LoginWithEmail).Methods(http.MethodPost)

	// Accounts
	api.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/account/create", rh.CreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/account/update/{id}", rh.UpdateAccount).Methods(http.MethodPut)
	api.HandleFunc("/account/delete/{id}", rh.DeleteAccount).Methods(http.MethodDelete)
	api.HandleFunc("/account/get", rh.GetAccounts).Methods(http.MethodGet)
	api.HandleFunc("/account/get/{id}", rh.GetAccountByID).Methods(http.MethodGet)
	api.HandleFunc("/account/import", rh.ImportAccounts).Methods(http.MethodPost)
	api.HandleFunc("/account/export", rh.ExportAccounts).Methods(http.MethodGet)

	// Parking cards
	api.HandleFunc("/parking-card/create", rh.CreateParkingCard).Methods(http.MethodPost)
	api.HandleFunc("/parking-card/update/{id}", rh.UpdateParkingCard).Methods(http.MethodPut)
	api.HandleFunc("/parking-card/delete/{id}", rh.DeleteParkingCard).Methods(http.MethodDelete)
	api.HandleFunc("/parking-card/get", rh.GetParkingCards).Methods(http.MethodGet)
	api.HandleFunc("/parking-card/get/{id}", rh.GetParkingCardByID).Methods(http.MethodGet)

	// Visitors
	api.HandleFunc("/visitor/create", rh.CreateVisitor).Methods(http.MethodPost)
	api.HandleFunc("/visitor/update/{id}", rh.UpdateVisitor).Methods(http.MethodPut)
	api.HandleFunc("/visitor/delete/{id}", rh.DeleteVisitor).Methods(http.MethodDelete)
	api.HandleFunc("/visitor/get", rh.GetVisitors).Methods(http.MethodGet)
	api.HandleFunc("/visitor/get/{id}", rh.GetVisitorByID).Methods(http.MethodGet)
	api.HandleFunc("/visitor/manage/{id}", rh.ManageVisitor).Methods(http.MethodPut)

	// Constructions
	api.HandleFunc("/construction/create", rh.CreateConstruction).Methods(http.MethodPost)
	api.HandleFunc("/construction/update/{id}", rh.UpdateConstruction).Methods(http.MethodPut)
	api.HandleFunc("/construction/delete/{id}", rh.DeleteConstruction).Methods(http.MethodDelete)
	api.HandleFunc("/construction/get", rh.GetConstructions).Methods(http.MethodGet)
	api.HandleFunc("/construction/get/{id}", rh.GetConstructionByID).Methods(http.MethodGet)
	api.HandleFunc("/construction/manage/{id}", rh.ManageConstruction).Methods(http.MethodPut)

	// Expenses
	api.HandleFunc("/expense/create", rh.CreateExpense).Methods(http.MethodPost)
	api.HandleFunc("/expense/update/{id}", rh.UpdateExpense).Methods(http.MethodPut)
	api.HandleFunc("/expense/delete/{id}", rh.DeleteExpense).Methods(http.MethodDelete)
	api.HandleFunc("/expense/get", rh.GetExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expense/get/{id}", rh.GetExpenseByID).Methods(http.MethodGet)

	// Funds
	api.HandleFunc("/fund/create", rh.CreateFund).Methods(http.MethodPost)
	api.HandleFunc("/fund/update/{id}", rh.UpdateFund).Methods(http.MethodPut)
	api.HandleFunc("/fund/delete/{id}", rh.DeleteFund).Methods(http.MethodDelete)
	api.HandleFunc("/fund/get", rh.GetFunds).Methods(http.MethodGet)
	api.HandleFunc("/fund/get/{id}", rh.GetFundByID).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.AuthApp))

	return router
}
