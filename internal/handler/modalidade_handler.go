package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ModalidadeHandler struct {
	modalidadeService service.ModalidadeService
}

func NewModalidadeHandler(modalidadeService service.ModalidadeService) *ModalidadeHandler {
	return &ModalidadeHandler{modalidadeService: modalidadeService}
}

func (h *ModalidadeHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v2")
	{
		api.GET("/modalidades", h.ListModalidades)
		api.POST("/modalidades", h.CreateModalidade)
		api.PUT("/modalidades/:id", h.UpdateModalidade)
		api.DELETE("/modalidades/:id", h.DeleteModalidade)
	}
}

// ListModalidades returns all modalidades
// @Summary      List modalidades
// @Tags         modalidades
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/modalidades [get]
func (h *ModalidadeHandler) ListModalidades(c *gin.Context) {
	modalidades, err := h.modalidadeService.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Data(modalidades))
}

// CreateModalidade inserts a new modalidade
// @Summary      Create modalidade
// @Tags         modalidades
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ModalidadeRequest  true  "Modalidade payload"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /api/v2/modalidades [post]
func (h *ModalidadeHandler) CreateModalidade(c *gin.Context) {
	var req service.ModalidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	modalidade, err := h.modalidadeService.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created("Modalidade cadastrada com sucesso", modalidade))
}

// UpdateModalidade replaces all editable fields of a modalidade
// @Summary      Update modalidade
// @Tags         modalidades
// @Accept       json
// @Produce      json
// @Param        id       path  int                        true  "Modalidade ID"
// @Param        payload  body  service.ModalidadeRequest  true  "Modalidade payload"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/modalidades/{id} [put]
func (h *ModalidadeHandler) UpdateModalidade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ModalidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("payload inválido: "+err.Error()))
		return
	}

	if err := h.modalidadeService.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Modalidade atualizada com sucesso"))
}

// DeleteModalidade removes a modalidade by id
// @Summary      Delete modalidade
// @Tags         modalidades
// @Produce      json
// @Param        id  path  int  true  "Modalidade ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/v2/modalidades/{id} [delete]
func (h *ModalidadeHandler) DeleteModalidade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.modalidadeService.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Modalidade removida com sucesso"))
}
