package dto

// Response ke frontend: un tema del catálogo con su slug de carpeta.
type TemaResponse struct {
	Nombre string `json:"nombre"`
	Slug   string `json:"slug"`
	Grupo  string `json:"grupo"` // "base" | "especial"
}
