package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// setupRouter wires the whole API over an in-memory SQLite store, without a
// change feed.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.TipoCompensacao{},
		&model.Norma{},
		&model.Modalidade{},
		&model.NormaTipoCompensacao{},
	))

	normaService := service.NewNormaService(repository.NewNormaRepository(db), nil)
	tipoService := service.NewTipoCompensacaoService(repository.NewTipoCompensacaoRepository(db), nil)
	modalidadeService := service.NewModalidadeService(repository.NewModalidadeRepository(db), nil)

	router := gin.New()
	NewNormaHandler(normaService).RegisterRoutes(router.Group(""))
	NewTipoCompensacaoHandler(tipoService).RegisterRoutes(router.Group(""))
	NewModalidadeHandler(modalidadeService).RegisterRoutes(router.Group(""))

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestTipoLifecycle(t *testing.T) {
	router, _ := setupRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v2/tipos", gin.H{"nome": "SNUC"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, env.Message)

	var criado model.TipoCompensacao
	require.NoError(t, json.Unmarshal(env.Data, &criado))
	require.NotZero(t, criado.ID)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/tipos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tipos []model.TipoCompensacao
	require.NoError(t, json.Unmarshal(env.Data, &tipos))
	require.Len(t, tipos, 1)
	assert.Equal(t, "SNUC", tipos[0].Nome)

	rec, _ = doJSON(t, router, http.MethodPut, "/api/v2/tipos/999", gin.H{"nome": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v2/tipos/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v2/tipos/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/tipos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tipos = nil
	require.NoError(t, json.Unmarshal(env.Data, &tipos))
	assert.Empty(t, tipos)
}

func TestNormaSearchAndRoundTrip(t *testing.T) {
	router, _ := setupRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v2/normas", gin.H{
		"nome":      "Lei Federal 9.985",
		"link":      "https://planalto.gov.br/snuc",
		"preambulo": "Institui o SNUC",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var norma model.Norma
	require.NoError(t, json.Unmarshal(env.Data, &norma))

	_, _ = doJSON(t, router, http.MethodPost, "/api/v2/normas", gin.H{
		"nome": "Portaria IEF 27",
	})

	// case-insensitive search over nome/link/preambulo
	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/normas?q=snuc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var normas []model.Norma
	require.NoError(t, json.Unmarshal(env.Data, &normas))
	require.Len(t, normas, 1)
	assert.Equal(t, "Lei Federal 9.985", normas[0].Nome)

	// full replace, then read back exactly what was written
	rec, _ = doJSON(t, router, http.MethodPut, "/api/v2/normas/1", gin.H{
		"nome": "Lei Federal 9.985/2000",
		"link": "https://planalto.gov.br/leis/9985",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/normas?q=9985", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	normas = nil
	require.NoError(t, json.Unmarshal(env.Data, &normas))
	require.Len(t, normas, 1)
	assert.Equal(t, "Lei Federal 9.985/2000", normas[0].Nome)
	assert.Equal(t, "https://planalto.gov.br/leis/9985", normas[0].Link)
	assert.Empty(t, normas[0].Preambulo)

	rec, _ = doJSON(t, router, http.MethodPut, "/api/v2/normas/999", gin.H{"nome": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNormaInvalidIDIs400(t *testing.T) {
	router, _ := setupRouter(t)

	rec, env := doJSON(t, router, http.MethodPut, "/api/v2/normas/abc", gin.H{"nome": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "id inválido")
}

func TestVinculoAndListByTipo(t *testing.T) {
	router, _ := setupRouter(t)

	_, envTipo := doJSON(t, router, http.MethodPost, "/api/v2/tipos", gin.H{"nome": "SNUC"})
	var tipo model.TipoCompensacao
	require.NoError(t, json.Unmarshal(envTipo.Data, &tipo))

	_, envOutro := doJSON(t, router, http.MethodPost, "/api/v2/tipos", gin.H{"nome": "Minerária"})
	var outro model.TipoCompensacao
	require.NoError(t, json.Unmarshal(envOutro.Data, &outro))

	_, envNorma := doJSON(t, router, http.MethodPost, "/api/v2/normas", gin.H{"nome": "Lei Federal 9.985"})
	var norma model.Norma
	require.NoError(t, json.Unmarshal(envNorma.Data, &norma))

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v2/normas-tipos-compensacao", gin.H{
		"tipo_id":  tipo.ID,
		"norma_id": norma.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v2/tipos/1/normas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var vinculadas []model.Norma
	require.NoError(t, json.Unmarshal(env.Data, &vinculadas))
	require.Len(t, vinculadas, 1)
	assert.Equal(t, norma.ID, vinculadas[0].ID)

	// unrelated tipo: 200 with empty list, not an error
	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/tipos/2/normas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	vinculadas = nil
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &vinculadas))
	}
	assert.Empty(t, vinculadas)
}

func TestModalidadeLifecycle(t *testing.T) {
	router, db := setupRouter(t)

	tipo := model.TipoCompensacao{Nome: "SNUC"}
	require.NoError(t, db.Create(&tipo).Error)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v2/modalidades", gin.H{
		"tipo_id":   tipo.ID,
		"nome":      "PAGAMENTO",
		"proporcao": "0,5% do valor do empreendimento",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var criada model.Modalidade
	require.NoError(t, json.Unmarshal(env.Data, &criada))
	require.NotZero(t, criada.ID)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v2/modalidades", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var modalidades []model.Modalidade
	require.NoError(t, json.Unmarshal(env.Data, &modalidades))
	require.Len(t, modalidades, 1)
	assert.Equal(t, tipo.ID, modalidades[0].TipoID)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v2/modalidades/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v2/modalidades/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSisemaHandler_RelaysUpstreamBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	geojson := `{"type":"FeatureCollection","features":[{"type":"Feature"}]}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-44,-20,-43,-19", r.URL.Query().Get("bbox"))
		w.Header().Set("Content-Type", "application/json;charset=UTF-8")
		_, _ = w.Write([]byte(geojson))
	}))
	defer upstream.Close()

	svc := service.NewSisemaService(upstream.URL, "geonode:ucs", "geonode:imoveis", upstream.Client())
	router := gin.New()
	NewSisemaHandler(svc, zerolog.Nop()).RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v2/sisema/unidades-conservacao?bbox=-44,-20,-43,-19", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, geojson, rec.Body.String())
	assert.Equal(t, "application/json;charset=UTF-8", rec.Header().Get("Content-Type"))
}

func TestSisemaHandler_UpstreamFailureIsFixed500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := service.NewSisemaService(upstream.URL, "geonode:ucs", "geonode:imoveis", &http.Client{})
	router := gin.New()
	NewSisemaHandler(svc, zerolog.Nop()).RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/sisema/imoveis-compensacao", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, msgSisemaIndisponivel, env.Error)
}
