package http

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromGoogle(id)
}

// querySkip reads the optional skip parameter; it defaults to 0.
func querySkip(c echo.Context) (int, error) {
	var skip *int
	if err := runtime.BindQueryParameter("form", true, false, "skip", c.QueryParams(), &skip); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("skip", err)
	}
	if skip == nil {
		return 0, nil
	}
	return *skip, nil
}

// queryStatus reads the optional status filter; nil means every status.
func queryStatus(c echo.Context) (*order.Status, error) {
	var raw *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	if raw == nil {
		return nil, nil
	}

	status, err := order.ParseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
