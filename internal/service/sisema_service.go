package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// FeatureQuery carries the two caller-supplied WFS parameters. Anything else
// sent by the caller is dropped: only allow-listed parameters reach the
// upstream request.
type FeatureQuery struct {
	BBox      string
	CQLFilter string
}

// FeatureResult is the upstream payload relayed verbatim to the caller.
type FeatureResult struct {
	Body        []byte
	ContentType string
}

// SisemaService proxies two fixed GetFeature queries to the SISEMA
// geoserver: conservation-unit polygons and compensation-eligible property
// points.
type SisemaService interface {
	UnidadesConservacao(ctx context.Context, q FeatureQuery) (FeatureResult, error)
	ImoveisCompensacao(ctx context.Context, q FeatureQuery) (FeatureResult, error)
}

type sisemaService struct {
	baseURL      string
	layerUC      string
	layerImoveis string
	client       *http.Client
}

// NewSisemaService builds the proxy over the given WFS endpoint. The client
// carries no timeout: a slow upstream blocks only the requesting goroutine.
func NewSisemaService(baseURL, layerUC, layerImoveis string, client *http.Client) SisemaService {
	if client == nil {
		client = &http.Client{}
	}
	return &sisemaService{
		baseURL:      baseURL,
		layerUC:      layerUC,
		layerImoveis: layerImoveis,
		client:       client,
	}
}

func (s *sisemaService) UnidadesConservacao(ctx context.Context, q FeatureQuery) (FeatureResult, error) {
	return s.getFeature(ctx, s.layerUC, q)
}

func (s *sisemaService) ImoveisCompensacao(ctx context.Context, q FeatureQuery) (FeatureResult, error) {
	return s.getFeature(ctx, s.layerImoveis, q)
}

// getFeature issues a WFS 2.0.0 GetFeature request for the given layer with
// GeoJSON output. The URL is built structurally; caller input never gets
// concatenated into the query string.
func (s *sisemaService) getFeature(ctx context.Context, layer string, q FeatureQuery) (FeatureResult, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return FeatureResult{}, fmt.Errorf("endereço do geoserver inválido: %w", err)
	}

	params := url.Values{}
	params.Set("service", "WFS")
	params.Set("version", "2.0.0")
	params.Set("request", "GetFeature")
	params.Set("typeNames", layer)
	params.Set("outputFormat", "application/json")
	if q.BBox != "" {
		params.Set("bbox", q.BBox)
	}
	if q.CQLFilter != "" {
		params.Set("cql_filter", q.CQLFilter)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return FeatureResult{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return FeatureResult{}, fmt.Errorf("falha ao consultar o geoserver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FeatureResult{}, fmt.Errorf("geoserver respondeu %s para a camada %s", resp.Status, layer)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FeatureResult{}, fmt.Errorf("falha ao ler resposta do geoserver: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	return FeatureResult{Body: body, ContentType: contentType}, nil
}
