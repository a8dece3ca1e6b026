package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"adforge/internal/domain"
)

// maxUploadBytes bounds the multipart memory buffer for analyze-image.
const maxUploadBytes = 16 << 20

type generateRequest struct {
	BusinessType       string `json:"business_type"`
	ProductDescription string `json:"product_description"`
	AdType             string `json:"ad_type"`
	Language           string `json:"language"`
	Format             string `json:"format"`
}

// toDomain converts the wire shape into the request the pipeline consumes.
// Absent fields stay empty by contract; only language and format default.
func (g generateRequest) toDomain() domain.CreativeRequest {
	req := domain.CreativeRequest{
		BusinessType:       g.BusinessType,
		ProductDescription: g.ProductDescription,
		Tone:               g.AdType,
		Language:           g.Language,
		Format:             domain.ParseFormat(g.Format),
	}
	req.Normalize()
	return req
}

func dataURI(jpegBytes []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegBytes)
}

// AnalyzeImage accepts a multipart upload and returns the inferred business
// identity derived from its caption.
func (a *App) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.fail(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		a.fail(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		a.fail(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	analysis, err := a.Creative.AnalyzeImage(r.Context(), data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("analyze image failed")
		a.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{
		"status":        "success",
		"description":   analysis.Description,
		"business_type": analysis.BusinessType,
		"tone":          analysis.Tone,
	})
}

// GenerateSlogan produces a sanitized slogan for the request.
func (a *App) GenerateSlogan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	slogan, err := a.Creative.GenerateSlogan(r.Context(), req.toDomain())
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate slogan failed")
		a.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "success", "slogan": slogan})
}

// GenerateImage produces a standalone advertisement image.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	jpegBytes, err := a.Creative.GenerateImage(r.Context(), req.toDomain())
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate image failed")
		a.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "success", "image_url": dataURI(jpegBytes)})
}

// GeneratePoster runs the full pipeline and returns the composited
// creative along with the slogan drawn on it.
func (a *App) GeneratePoster(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	poster, err := a.Creative.GeneratePoster(r.Context(), req.toDomain())
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate poster failed")
		a.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{
		"status":    "success",
		"image_url": dataURI(poster.JPEG),
		"slogan":    poster.Slogan,
	})
}
