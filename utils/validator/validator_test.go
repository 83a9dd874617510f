package validatorx_test

import (
	"strings"
	"testing"

	"github.com/abmshq/abms-backend/model"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
)

func TestMessage(t *testing.T) {
	valid := model.AccountInsertRequest{
		UserName:   "resident1",
		Email:      "resident1@example.com",
		Phone:      "0912345678",
		Password:   "password123",
		FullName:   "Test Resident",
		Role:       3,
		BuildingID: "building-1",
	}

	tests := []struct {
		name   string
		mutate func(r *model.AccountInsertRequest)
		want   string
	}{
		{
			name:   "valid request",
			mutate: func(r *model.AccountInsertRequest) {},
			want:   "",
		},
		{
			name:   "missing required field",
			mutate: func(r *model.AccountInsertRequest) { r.UserName = "" },
			want:   "username is required",
		},
		{
			name:   "bad email",
			mutate: func(r *model.AccountInsertRequest) { r.Email = "not-an-email" },
			want:   "email is not a valid email",
		},
		{
			name:   "phone with letters",
			mutate: func(r *model.AccountInsertRequest) { r.Phone = "09123abc78" },
			want:   "digits only",
		},
		{
			name:   "phone too short",
			mutate: func(r *model.AccountInsertRequest) { r.Phone = "0912" },
			want:   "too short",
		},
		{
			name:   "role out of range",
			mutate: func(r *model.AccountInsertRequest) { r.Role = 9 },
			want:   "out of range",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			got := validatorx.Message(&req)
			if tt.want == "" {
				if got != "" {
					t.Fatalf("Message() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Fatalf("Message() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
