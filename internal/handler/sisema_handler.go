package handler

import (
	"context"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Fixed message returned for any upstream failure; the detail stays in the
// server log.
const msgSisemaIndisponivel = "Não foi possível consultar o serviço geográfico do SISEMA"

type SisemaHandler struct {
	sisemaService service.SisemaService
	log           zerolog.Logger
}

func NewSisemaHandler(sisemaService service.SisemaService, log zerolog.Logger) *SisemaHandler {
	return &SisemaHandler{sisemaService: sisemaService, log: log}
}

func (h *SisemaHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v2/sisema")
	{
		api.GET("/unidades-conservacao", h.UnidadesConservacao)
		api.GET("/imoveis-compensacao", h.ImoveisCompensacao)
	}
}

// UnidadesConservacao relays the conservation-unit polygon layer
// @Summary      Conservation-unit polygons (GeoJSON)
// @Tags         sisema
// @Produce      json
// @Param        bbox        query  string  false  "Bounding box forwarded to the WFS"
// @Param        cql_filter  query  string  false  "CQL filter forwarded to the WFS"
// @Success      200  {object}  object  "GeoJSON FeatureCollection"
// @Failure      500  {object}  response.Envelope
// @Router       /api/v2/sisema/unidades-conservacao [get]
func (h *SisemaHandler) UnidadesConservacao(c *gin.Context) {
	h.relay(c, h.sisemaService.UnidadesConservacao)
}

// ImoveisCompensacao relays the compensation-eligible property point layer
// @Summary      Compensation-eligible properties (GeoJSON)
// @Tags         sisema
// @Produce      json
// @Param        bbox        query  string  false  "Bounding box forwarded to the WFS"
// @Param        cql_filter  query  string  false  "CQL filter forwarded to the WFS"
// @Success      200  {object}  object  "GeoJSON FeatureCollection"
// @Failure      500  {object}  response.Envelope
// @Router       /api/v2/sisema/imoveis-compensacao [get]
func (h *SisemaHandler) ImoveisCompensacao(c *gin.Context) {
	h.relay(c, h.sisemaService.ImoveisCompensacao)
}

type featureFetch func(ctx context.Context, q service.FeatureQuery) (service.FeatureResult, error)

func (h *SisemaHandler) relay(c *gin.Context, fetch featureFetch) {
	query := service.FeatureQuery{
		BBox:      c.Query("bbox"),
		CQLFilter: c.Query("cql_filter"),
	}

	result, err := fetch(c.Request.Context(), query)
	if err != nil {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("consulta ao SISEMA falhou")
		c.JSON(http.StatusInternalServerError, response.Error(msgSisemaIndisponivel))
		return
	}

	c.Data(http.StatusOK, result.ContentType, result.Body)
}
