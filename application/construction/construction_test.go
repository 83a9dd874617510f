package construction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appconstruction "github.com/abmshq/abms-backend/application/construction"
	"github.com/abmshq/abms-backend/constant"
	publishermocks "github.com/abmshq/abms-backend/mocks/application/construction"
	constructionmocks "github.com/abmshq/abms-backend/mocks/repository/construction"
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

func validConstructionRequest() *model.ConstructionInsertRequest {
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	return &model.ConstructionInsertRequest{
		RoomID:                   "room-101",
		Name:                     "Kitchen renovation",
		ConstructionOrganization: "ACME Builders",
		PhoneContact:             "0912345678",
		StartTime:                start,
		EndTime:                  start.Add(14 * 24 * time.Hour),
	}
}

func TestConstructionApp_Create(t *testing.T) {
	type fields struct {
		txRepo           *txmocks.TxRepository
		constructionRepo *constructionmocks.ConstructionRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.ConstructionInsertRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new request starts in sent status",
			fields: fields{
				txRepo:           txmocks.NewTxRepository(t),
				constructionRepo: constructionmocks.NewConstructionRepository(t),
			},
			req: validConstructionRequest(),
			mockCall: func(f fields) {
				f.constructionRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(c *model.Construction) bool {
						return c.ID != "" &&
							c.RoomID == "room-101" &&
							c.Status == constant.StatusSent &&
							c.CreateUser == "resident1"
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: end before start",
			fields: fields{
				txRepo:           txmocks.NewTxRepository(t),
				constructionRepo: constructionmocks.NewConstructionRepository(t),
			},
			req: func() *model.ConstructionInsertRequest {
				req := validConstructionRequest()
				req.EndTime = req.StartTime.Add(-time.Hour)
				return req
			}(),
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: phone contact not numeric",
			fields: fields{
				txRepo:           txmocks.NewTxRepository(t),
				constructionRepo: constructionmocks.NewConstructionRepository(t),
			},
			req: func() *model.ConstructionInsertRequest {
				req := validConstructionRequest()
				req.PhoneContact = "not-a-phone"
				return req
			}(),
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
			app := appconstruction.NewConstructionApp(tt.fields.txRepo, tt.fields.constructionRepo, nil)

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

func TestConstructionApp_Manage(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	constructionRepo := constructionmocks.NewConstructionRepository(t)
	publisher := publishermocks.NewNotificationPublisher(t)
	app := appconstruction.NewConstructionApp(txRepo, constructionRepo, publisher)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()

	constructionRepo.
		On("GetByIDTx", mock.Anything, tx, "cons-1").
		Return(&model.Construction{ID: "cons-1", Status: constant.StatusSent}, nil).
		Once()

	constructionRepo.
		On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(c *model.Construction) bool {
			return c.ID == "cons-1" &&
				c.Status == constant.StatusApproved &&
				c.ModifyUser != nil && *c.ModifyUser == "manager1"
		})).
		Return(nil).
		Once()

	publisher.
		On("PublishStatusNotification", mock.MatchedBy(func(msg rabbitmq.StatusNotificationMessage) bool {
			return msg.Entity == "construction" &&
				msg.ID == "cons-1" &&
				msg.Status == int(constant.StatusApproved) &&
				msg.ApproveUser == "manager1"
		})).
		Return(nil).
		Once()

	got, err := app.Manage(actor.WithActor(context.Background(), "manager1"), "cons-1", constant.StatusApproved)
	if err != nil {
		t.Fatalf("Manage() error = %v", err)
	}
	if got != "cons-1" {
		t.Fatalf("Manage() = %s, want cons-1", got)
	}

	// A decision other than approve/reject is rejected before any tx
	_, err = app.Manage(actor.WithActor(context.Background(), "manager1"), "cons-1", constant.StatusSent)
	if err == nil {
		t.Fatal("Manage() accepted a non-decision status")
	}
	assertErrCode(t, err, constant.ErrInvalidRequest)
}
