package validate_operation

import (
	"context"

	validateOperation "github.com/m04kA/SMC-OutreachService/internal/usecase/validate_operation"
)

type ValidateOperationUseCase interface {
	Execute(ctx context.Context, req *validateOperation.Request) *validateOperation.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
