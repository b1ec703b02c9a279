package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/delivery/http/response"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	SearchUC  usecase.SearchUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	searchUC  usecase.SearchUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		searchUC:  params.SearchUC,
		logger:    params.Logger,
	}
}

// GetCatalog handles retrieving the full campus catalog
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.catalogUC.Catalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog)
}

// Search handles keyword filtering over the catalog
func (h *CatalogHandler) Search(c echo.Context) error {
	out := h.searchUC.Search(c.QueryParam("q"))

	return response.Success(c, http.StatusOK, out)
}

// GetPlace handles retrieving one place with its reviews
func (h *CatalogHandler) GetPlace(c echo.Context) error {
	out, err := h.catalogUC.Place(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// GetPlaceQR handles generating a locator QR code for a place
func (h *CatalogHandler) GetPlaceQR(c echo.Context) error {
	png, err := h.catalogUC.PlaceQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
