package dto

import (
	embed "github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/helper"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/model"
)

// Request desde el frontend → backend
type AgregarEnlaceRequest struct {
	Titulo string `json:"titulo"`
	URL    string `json:"url" validate:"required"`
}

// Response hacia el frontend, con la URL ya normalizada para embeber
type EnlaceResponse struct {
	Indice  int    `json:"indice"`
	Titulo  string `json:"titulo"`
	URL     string `json:"url"`
	Embed   bool   `json:"embed"`
	OpenURL string `json:"open_url"`
}

// ToEnlaceResponse normaliza un VideoLink guardado para el render.
func ToEnlaceResponse(idx int, l model.VideoLink) EnlaceResponse {
	norm := embed.DrivePreviewURL(l.URL)
	return EnlaceResponse{
		Indice:  idx,
		Titulo:  l.Titulo,
		URL:     norm,
		Embed:   embed.ShouldEmbed(norm),
		OpenURL: embed.EncodeURL(norm),
	}
}

// ToEnlaceResponses convierte la lista completa preservando posiciones.
func ToEnlaceResponses(links []model.VideoLink) []EnlaceResponse {
	out := make([]EnlaceResponse, len(links))
	for i, l := range links {
		out[i] = ToEnlaceResponse(i, l)
	}
	return out
}
