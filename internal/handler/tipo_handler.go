package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TipoCompensacaoHandler struct {
	tipoService service.TipoCompensacaoService
}

func NewTipoCompensacaoHandler(tipoService service.TipoCompensacaoService) *TipoCompensacaoHandler {
	return &TipoCompensacaoHandler{tipoService: tipoService}
}

func (h *TipoCompensacaoHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v2")
	{
		api.GET("/tipos", h.ListTipos)
		api.POST("/tipos", h.CreateTipo)
		api.PUT("/tipos/:id", h.UpdateTipo)
		api.DELETE("/tipos/:id", h.DeleteTipo)
	}
}

// ListTipos returns all tipos de compensação
// @Summary      List tipos
// @Tags         tipos
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/tipos [get]
func (h *TipoCompensacaoHandler) ListTipos(c *gin.Context) {
	tipos, err := h.tipoService.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Data(tipos))
}

// CreateTipo inserts a new tipo and returns its generated id
// @Summary      Create tipo
// @Tags         tipos
// @Accept       json
// @Produce      json
// @Param        payload  body  service.TipoCompensacaoRequest  true  "Tipo payload"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/tipos [post]
func (h *TipoCompensacaoHandler) CreateTipo(c *gin.Context) {
	var req service.TipoCompensacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	tipo, err := h.tipoService.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created("Tipo de compensação cadastrado com sucesso", tipo))
}

// UpdateTipo replaces the nome of a tipo
// @Summary      Update tipo
// @Tags         tipos
// @Accept       json
// @Produce      json
// @Param        id       path  int                             true  "Tipo ID"
// @Param        payload  body  service.TipoCompensacaoRequest  true  "Tipo payload"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/tipos/{id} [put]
func (h *TipoCompensacaoHandler) UpdateTipo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.TipoCompensacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	if err := h.tipoService.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Tipo de compensação atualizado com sucesso"))
}

// DeleteTipo removes a tipo by id
// @Summary      Delete tipo
// @Tags         tipos
// @Produce      json
// @Param        id  path  int  true  "Tipo ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/tipos/{id} [delete]
func (h *TipoCompensacaoHandler) DeleteTipo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tipoService.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Tipo de compensação removido com sucesso"))
}
