package parkingcard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appparkingcard "github.com/abmshq/abms-backend/application/parkingcard"
	"github.com/abmshq/abms-backend/constant"
	publishermocks "github.com/abmshq/abms-backend/mocks/application/parkingcard"
	parkingcardmocks "github.com/abmshq/abms-backend/mocks/repository/parkingcard"
	txmocks "github.com/abmshq/abms-backend/mocks/repository/tx"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/thirdparty/rabbitmq"
	"github.com/abmshq/abms-backend/utils/actor"
	cerr "github.com/abmshq/abms-backend/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestParkingCardApp_Create(t *testing.T) {
	expireDate := time.Now().Add(365 * 24 * time.Hour).Truncate(time.Second)

	type fields struct {
		txRepo    *txmocks.TxRepository
		cardRepo  *parkingcardmocks.ParkingCardRepository
		publisher *publishermocks.ExpirationPublisher
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.ParkingCardInsertRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: card created and expiration scheduled",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cardRepo:  parkingcardmocks.NewParkingCardRepository(t),
				publisher: publishermocks.NewExpirationPublisher(t),
			},
			req: &model.ParkingCardInsertRequest{
				ResidentID:   "acc-1",
				LicensePlate: "51H-123.45",
				Brand:        "Honda",
				Color:        "red",
				ExpireDate:   expireDate,
			},
			mockCall: func(f fields) {
				f.cardRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(card *model.ParkingCard) bool {
						return card.ID != "" &&
							card.ResidentID == "acc-1" &&
							card.LicensePlate == "51H-123.45" &&
							card.Status == constant.StatusSent &&
							card.CreateUser == "resident1"
					})).
					Return(nil).
					Once()

				f.publisher.
					On("PublishCardExpiration", mock.MatchedBy(func(msg rabbitmq.CardExpirationMessage) bool {
						return msg.CardID != "" && msg.ExpiresAt.Equal(expireDate)
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing license plate",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cardRepo:  parkingcardmocks.NewParkingCardRepository(t),
				publisher: publishermocks.NewExpirationPublisher(t),
			},
			req: &model.ParkingCardInsertRequest{
				ResidentID: "acc-1",
				Brand:      "Honda",
				Color:      "red",
				ExpireDate: expireDate,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appparkingcard.NewParkingCardApp(tt.fields.txRepo, tt.fields.cardRepo, tt.fields.publisher)

			got, err := app.Create(actor.WithActor(context.Background(), "resident1"), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == "" {
				t.Fatal("Create() returned an empty id")
			}
		})
	}
}

func TestParkingCardApp_Update_ReschedulesOnNewExpiry(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	cardRepo := parkingcardmocks.NewParkingCardRepository(t)
	publisher := publishermocks.NewExpirationPublisher(t)
	app := appparkingcard.NewParkingCardApp(txRepo, cardRepo, publisher)

	oldExpiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	newExpiry := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()

	cardRepo.
		On("GetByIDTx", mock.Anything, tx, "card-1").
		Return(&model.ParkingCard{
			ID:           "card-1",
			ResidentID:   "acc-1",
			LicensePlate: "51H-123.45",
			ExpireDate:   oldExpiry,
			Status:       constant.StatusActive,
		}, nil).
		Once()

	cardRepo.
		On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(card *model.ParkingCard) bool {
			return card.ID == "card-1" && card.ExpireDate.Equal(newExpiry)
		})).
		Return(nil).
		Once()

	publisher.
		On("PublishCardExpiration", mock.MatchedBy(func(msg rabbitmq.CardExpirationMessage) bool {
			return msg.CardID == "card-1" && msg.ExpiresAt.Equal(newExpiry)
		})).
		Return(nil).
		Once()

	got, err := app.Update(actor.WithActor(context.Background(), "manager1"), "card-1", &model.ParkingCardEditRequest{
		ResidentID: "acc-1",
		Brand:      "Honda",
		Color:      "red",
		ExpireDate: newExpiry,
		Status:     constant.StatusActive,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got != "card-1" {
		t.Fatalf("Update() = %s, want card-1", got)
	}
}

func TestParkingCardApp_Expire(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		cardRepo *parkingcardmocks.ParkingCardRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: past-due card goes inactive",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				cardRepo: parkingcardmocks.NewParkingCardRepository(t),
			},
			id: "card-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cardRepo.
					On("GetByIDTx", mock.Anything, tx, "card-1").
					Return(&model.ParkingCard{
						ID:         "card-1",
						Status:     constant.StatusActive,
						ExpireDate: time.Now().Add(-time.Hour),
					}, nil).
					Once()

				f.cardRepo.
					On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(card *model.ParkingCard) bool {
						return card.ID == "card-1" &&
							card.Status == constant.StatusInactive &&
							card.ModifyUser != nil && *card.ModifyUser == "system"
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: renewed card keeps its status",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				cardRepo: parkingcardmocks.NewParkingCardRepository(t),
			},
			id: "card-2",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// Expiry moved into the future after the message was scheduled
				f.cardRepo.
					On("GetByIDTx", mock.Anything, tx, "card-2").
					Return(&model.ParkingCard{
						ID:         "card-2",
						Status:     constant.StatusActive,
						ExpireDate: time.Now().Add(24 * time.Hour),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: missing card is treated as done",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				cardRepo: parkingcardmocks.NewParkingCardRepository(t),
			},
			id: "card-missing",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cardRepo.
					On("GetByIDTx", mock.Anything, tx, "card-missing").
					Return(nil, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: update fails and the message requeues",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				cardRepo: parkingcardmocks.NewParkingCardRepository(t),
			},
			id: "card-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cardRepo.
					On("GetByIDTx", mock.Anything, tx, "card-1").
					Return(&model.ParkingCard{
						ID:         "card-1",
						Status:     constant.StatusActive,
						ExpireDate: time.Now().Add(-time.Hour),
					}, nil).
					Once()

				f.cardRepo.
					On("UpdateTx", mock.Anything, tx, mock.AnythingOfType("*model.ParkingCard")).
					Return(errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appparkingcard.NewParkingCardApp(tt.fields.txRepo, tt.fields.cardRepo, nil)

			err := app.Expire(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expire() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
