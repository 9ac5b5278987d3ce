package dto

import enlaceDto "github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/dto"

// ArchivoView es una fila del listado: objeto del bucket + su decoración.
type ArchivoView struct {
	Nombre string `json:"nombre"`
	Titulo string `json:"titulo"`
	URL    string `json:"url,omitempty"`
	Size   int64  `json:"size,omitempty"`
	Mime   string `json:"mime,omitempty"`
}

// ListadoResponse agrupa lo que muestra un panel de categoría. Enlaces
// solo viene cargado para la categoría videos.
type ListadoResponse struct {
	Tema      string                      `json:"tema"`
	Categoria string                      `json:"categoria"`
	Archivos  []ArchivoView               `json:"archivos"`
	Enlaces   []enlaceDto.EnlaceResponse  `json:"enlaces,omitempty"`
}

// SubidaResponse devuelve dónde quedó el objeto recién subido.
type SubidaResponse struct {
	Nombre string `json:"nombre"`
	Key    string `json:"key"`
	URL    string `json:"url"`
	Titulo string `json:"titulo,omitempty"`
}

// Request para fijar o limpiar el título visible de un archivo.
// Un título en blanco borra la entrada del meta.json.
type TituloRequest struct {
	Titulo string `json:"titulo"`
}
