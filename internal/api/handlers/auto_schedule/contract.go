package auto_schedule

import (
	"context"

	autoSchedule "github.com/m04kA/SMC-OutreachService/internal/usecase/auto_schedule"
)

type AutoScheduleUseCase interface {
	Execute(ctx context.Context, req *autoSchedule.Request) (*autoSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
