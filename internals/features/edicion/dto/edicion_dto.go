package dto

// Request con el código compartido de la cátedra.
type CodigoRequest struct {
	Codigo string `json:"codigo" validate:"required"`
}

// Response con el token que habilita las rutas de edición.
type SesionResponse struct {
	Token  string `json:"token"`
	Expira string `json:"expira"`
}
