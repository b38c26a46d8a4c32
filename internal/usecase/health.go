package usecase

import (
	"context"

	"github.com/swaggest/usecase"
)

// Health creates use case interactor to report service liveness.
func Health() usecase.Interactor {
	type healthOutput struct {
		Status string `json:"status"`
	}

	u := usecase.NewInteractor(func(_ context.Context, _ struct{}, out *healthOutput) error {
		out.Status = "healthy"

		return nil
	})

	u.SetDescription("Health reports service liveness.")
	u.SetTags("Service")

	return u
}
