package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NormaHandler struct {
	normaService service.NormaService
}

func NewNormaHandler(normaService service.NormaService) *NormaHandler {
	return &NormaHandler{normaService: normaService}
}

func (h *NormaHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v2")
	{
		api.GET("/normas", h.ListNormas)
		api.POST("/normas", h.CreateNorma)
		api.PUT("/normas/:id", h.UpdateNorma)
		api.DELETE("/normas/:id", h.DeleteNorma)
		api.GET("/tipos/:id/normas", h.ListNormasByTipo)
		api.POST("/normas-tipos-compensacao", h.VincularNormaTipo)
	}
}

// ListNormas returns all normas, optionally filtered by a search term
// @Summary      List normas
// @Tags         normas
// @Produce      json
// @Param        q  query  string  false  "Case-insensitive substring matched against nome, link and preambulo"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/normas [get]
func (h *NormaHandler) ListNormas(c *gin.Context) {
	normas, err := h.normaService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Data(normas))
}

// ListNormasByTipo returns the normas associated with a tipo de compensação
// @Summary      List normas of a tipo
// @Tags         normas
// @Produce      json
// @Param        id  path  int  true  "Tipo de compensação ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/tipos/{id}/normas [get]
func (h *NormaHandler) ListNormasByTipo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	normas, err := h.normaService.ListByTipo(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Data(normas))
}

// CreateNorma inserts a new norma
// @Summary      Create norma
// @Tags         normas
// @Accept       json
// @Produce      json
// @Param        payload  body  service.NormaRequest  true  "Norma payload"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/normas [post]
func (h *NormaHandler) CreateNorma(c *gin.Context) {
	var req service.NormaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	norma, err := h.normaService.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created("Norma cadastrada com sucesso", norma))
}

// UpdateNorma replaces all editable fields of a norma
// @Summary      Update norma
// @Tags         normas
// @Accept       json
// @Produce      json
// @Param        id       path  int                   true  "Norma ID"
// @Param        payload  body  service.NormaRequest  true  "Norma payload"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/normas/{id} [put]
func (h *NormaHandler) UpdateNorma(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.NormaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	if err := h.normaService.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Norma atualizada com sucesso"))
}

// DeleteNorma removes a norma by id
// @Summary      Delete norma
// @Tags         normas
// @Produce      json
// @Param        id  path  int  true  "Norma ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/normas/{id} [delete]
func (h *NormaHandler) DeleteNorma(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.normaService.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Norma removida com sucesso"))
}

// VincularNormaTipo links a norma to a tipo de compensação
// @Summary      Link norma to tipo
// @Tags         normas
// @Accept       json
// @Produce      json
// @Param        payload  body  service.VinculoRequest  true  "Association payload"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/normas-tipos-compensacao [post]
func (h *NormaHandler) VincularNormaTipo(c *gin.Context) {
	var req service.VinculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	link, err := h.normaService.Vincular(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created("Vínculo cadastrado com sucesso", link))
}
