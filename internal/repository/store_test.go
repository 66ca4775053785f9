package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DanRulev/quizroom/internal/models"
	mock_repository "github.com/DanRulev/quizroom/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *StoreR {
	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}

	return &StoreR{db: db}
}

func returnValue(raw string) func(context.Context, interface{}, string, ...interface{}) error {
	return func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
		*dest.(*string) = raw
		return nil
	}
}

func TestStoreR_CurrentUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.User
		wantOk  bool
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyCurrentUser).
					DoAndReturn(returnValue(`{"id":"user-1","username":"bob","email":"bob@x.io","isAdmin":false}`))
			},
			want:   models.User{ID: "user-1", Username: "bob", Email: "bob@x.io"},
			wantOk: true,
		},
		{
			name: "absent",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyCurrentUser).Return(sql.ErrNoRows)
			},
			wantOk: false,
		},
		{
			name: "driver error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyCurrentUser).Return(errors.New("disk I/O error"))
			},
			wantErr: models.ErrStorageUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStoreMock(t, ctrl, tt.f)

			got, ok, err := repo.CurrentUser(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreR_Quizzes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantLen int
		wantOk  bool
		wantErr bool
	}{
		{
			name: "never written",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyQuizzes).Return(sql.ErrNoRows)
			},
			wantOk: false,
		},
		{
			name: "empty collection is still written",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyQuizzes).DoAndReturn(returnValue(`[]`))
			},
			wantOk: true,
		},
		{
			name: "one quiz",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyQuizzes).
					DoAndReturn(returnValue(`[{"id":"quiz-1","title":"T","questions":[],"published":true,"createdAt":"2024-01-01T00:00:00Z"}]`))
			},
			wantLen: 1,
			wantOk:  true,
		},
		{
			name: "corrupt value",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyQuizzes).DoAndReturn(returnValue(`{not json`))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStoreMock(t, ctrl, tt.f)

			got, ok, err := repo.Quizzes(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestStoreR_SaveQuizzes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []models.Quiz
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "nil is written as empty array",
			in:   nil,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), KeyQuizzes, "[]").Return(nil, nil)
			},
		},
		{
			name: "error exec",
			in:   []models.Quiz{{ID: "quiz-1"}},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), KeyQuizzes, gomock.Any()).Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStoreMock(t, ctrl, tt.f)

			err := repo.SaveQuizzes(context.Background(), tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrStorageUnavailable)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestStoreR_Attempts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantLen int
		wantErr bool
	}{
		{
			name: "absent reads as empty",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyAttempts).Return(sql.ErrNoRows)
			},
		},
		{
			name: "two attempts",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyAttempts).
					DoAndReturn(returnValue(`[{"id":"attempt-1"},{"id":"attempt-2"}]`))
			},
			wantLen: 2,
		},
		{
			name: "driver error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), KeyAttempts).Return(errors.New("locked"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStoreMock(t, ctrl, tt.f)

			got, err := repo.Attempts(context.Background())
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrStorageUnavailable)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestStoreR_ClearCurrentUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newStoreMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), KeyCurrentUser).Return(nil, nil)
	})

	require.NoError(t, repo.ClearCurrentUser(context.Background()))
}
