package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatsService_Record(t *testing.T) {
	msg := model.StatsMessage{
		Keys:         "key-1",
		FullShortURL: "short.ly/abc1234",
		RemoteAddr:   "10.0.0.1:5000",
		UserAgent:    "curl/8.0",
		OccurredAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		insertErr error
		wantErr   error
	}{
		{
			name: "stored",
		},
		{
			name:      "already stored",
			insertErr: fmt.Errorf("link_access_logs_pkey: %w", repository.ErrUniqueViolation),
		},
		{
			name:      "database error",
			insertErr: assert.AnError,
			wantErr:   assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := mocks.NewMockStatsRepository(t)
			repo.EXPECT().InsertAccessLog(mock.Anything, msg.AccessLog()).Return(tt.insertErr).Once()
			svc := NewStatsService(repo, zap.NewNop())

			// Act
			err := svc.Record(context.Background(), msg)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
