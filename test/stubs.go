package test

import (
	"go.uber.org/mock/gomock"

	"lamia/logic"
	"lamia/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type dummyObserver struct{}

func (o *dummyObserver) Finish() {}

var _ logic.IRequestObserver = &dummyObserver{}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	obs := &dummyObserver{}
	mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartDiscoveryRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().BlockApplied().AnyTimes()
	mockMetrics.EXPECT().FilterMatched(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ApprovedFollowCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PendingFollowCount(gomock.Any()).AnyTimes()
}

func stubUserAgent(mockUserAgent *mocks.MockIUserAgent) {
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
}
