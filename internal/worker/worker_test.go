package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pkidiscovery/internal/scanner"
	mockscanner "pkidiscovery/internal/scanner/mock"
	"pkidiscovery/internal/worker"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, discoveryID string) *river.Job[scanner.JobArgs] {
	return &river.Job[scanner.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   scanner.JobArgs{DiscoveryID: discoveryID},
	}
}

func TestDiscoveryScanWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewDiscoveryScanWorker(mock, time.Hour)

	id := uuid.New()
	mock.EXPECT().Execute(gomock.Any(), domain.DiscoveryID(id)).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id.String())))
}

func TestDiscoveryScanWorker_Work_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCancel bool
		wantSnooze bool
	}{
		{name: "not found cancels", err: serrors.With(serrors.ErrNotFound, "gone"), wantCancel: true},
		{name: "bad request cancels", err: serrors.With(serrors.ErrBadRequest, "bad targets"), wantCancel: true},
		{name: "unavailable cancels", err: serrors.With(serrors.ErrUnavailable, "no gateway"), wantCancel: true},
		{name: "conflict snoozes", err: serrors.With(serrors.ErrConflict, "busy"), wantSnooze: true},
		{name: "other errors retry", err: errors.New("db down")},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockscanner.NewMockScanner(ctrl)
			w := worker.NewDiscoveryScanWorker(mock, time.Hour)

			mock.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(tc.err)

			err := w.Work(context.Background(), makeJob(int64(i+2), uuid.NewString()))
			require.Error(t, err)

			var cancelErr *river.JobCancelError
			var snoozeErr *river.JobSnoozeError
			if tc.wantCancel {
				require.ErrorAs(t, err, &cancelErr)
			} else {
				require.NotErrorAs(t, err, &cancelErr)
			}
			if tc.wantSnooze {
				require.ErrorAs(t, err, &snoozeErr)
				require.Equal(t, time.Minute, snoozeErr.Duration)
			} else {
				require.NotErrorAs(t, err, &snoozeErr)
			}
		})
	}
}

func TestDiscoveryScanWorker_Work_InvalidIDCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewDiscoveryScanWorker(mock, time.Hour)

	err := w.Work(context.Background(), makeJob(10, "not-a-uuid"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDiscoveryScanWorker_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)

	require.Equal(t, 2*time.Hour, worker.NewDiscoveryScanWorker(mock, 2*time.Hour).Timeout(nil))
	require.Equal(t, time.Duration(-1), worker.NewDiscoveryScanWorker(mock, 0).Timeout(nil))
}

func TestDueSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewDueSweepWorker(mock)
	job := &river.Job[scanner.SweepJobArgs]{JobRow: &rivertype.JobRow{ID: 99}}

	mock.EXPECT().EnqueueDue(gomock.Any()).Return(3, nil)
	require.NoError(t, w.Work(context.Background(), job))

	mock.EXPECT().EnqueueDue(gomock.Any()).Return(1, errors.New("one trigger failed"))
	require.ErrorContains(t, w.Work(context.Background(), job), "one trigger failed")
}
