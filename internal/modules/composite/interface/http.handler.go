package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"productComposite/internal/modules/composite/application/usecase"
	"productComposite/internal/modules/composite/domain"
	"productComposite/internal/shared/httputil"
)

// CompositeHandler exposes the aggregate view over REST. It owns no logic
// beyond parameter parsing and error rendering.
type CompositeHandler struct {
	uc     *usecase.CompositeUseCase
	mapper *httputil.ErrorMapper
}

func NewCompositeHandler(uc *usecase.CompositeUseCase) *CompositeHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrNotFound, http.StatusNotFound).
		WithMapping(domain.ErrInvalidInput, http.StatusUnprocessableEntity)
	return &CompositeHandler{uc: uc, mapper: mapper}
}

// Register mounts the composite routes on the echo instance.
func (h *CompositeHandler) Register(e *echo.Echo) {
	e.GET("/product-composite/:productId", h.GetAggregate)
	e.POST("/product-composite", h.CreateAggregate)
	e.DELETE("/product-composite/:productId", h.DeleteAggregate)
	e.GET("/health", h.Health)
}

func (h *CompositeHandler) GetAggregate(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return badProductID(c)
	}

	aggregate, err := h.uc.GetProductAggregate(c.Request().Context(), productID)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, aggregate)
}

func (h *CompositeHandler) CreateAggregate(c echo.Context) error {
	var aggregate domain.ProductAggregate
	if err := c.Bind(&aggregate); err != nil {
		return c.JSON(http.StatusBadRequest, httputil.NewHTTPErrorInfo(c.Request().URL.Path, "malformed aggregate payload"))
	}

	if err := h.uc.CreateProductAggregate(c.Request().Context(), aggregate); err != nil {
		return h.renderError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *CompositeHandler) DeleteAggregate(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return badProductID(c)
	}

	if err := h.uc.DeleteProductAggregate(c.Request().Context(), productID); err != nil {
		return h.renderError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *CompositeHandler) Health(c echo.Context) error {
	health := h.uc.Health(c.Request().Context())
	status := http.StatusOK
	if health.Status != domain.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, health)
}

func (h *CompositeHandler) renderError(c echo.Context, err error) error {
	status := h.mapper.Map(err)
	if status == http.StatusInternalServerError {
		slog.Error("composite request failed", slog.String("path", c.Request().URL.Path), slog.Any("error", err))
	}
	return c.JSON(status, httputil.NewHTTPErrorInfo(c.Request().URL.Path, err.Error()))
}

func parseProductID(c echo.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("productId"))
	return productID, err == nil
}

func badProductID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, httputil.NewHTTPErrorInfo(c.Request().URL.Path, "productId must be an integer: "+c.Param("productId")))
}
