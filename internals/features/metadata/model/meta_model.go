package model

import "strings"

// VideoLink es un video alojado afuera (YouTube/Drive/Zoom), no un objeto
// del bucket. Se identifica por posición en la lista.
type VideoLink struct {
	Titulo string `json:"titulo"`
	URL    string `json:"url"`
}

// TopicMeta es el documento meta.json de un tema. Los nombres de campo
// están fijados por los documentos ya guardados en el bucket: no tocar.
type TopicMeta struct {
	Titles     map[string]map[string]string `json:"titles,omitempty"`
	VideoLinks []VideoLink                  `json:"video_links,omitempty"`
}

// GetTitle devuelve el título custom de un archivo, o "" si no hay.
func (m *TopicMeta) GetTitle(categoria, filename string) string {
	if m.Titles == nil {
		return ""
	}
	return m.Titles[categoria][filename]
}

// SetTitle guarda el título si viene algo; un título en blanco borra la
// entrada entera para mantener el documento chico.
func (m *TopicMeta) SetTitle(categoria, filename, titulo string) {
	titulo = strings.TrimSpace(titulo)
	if titulo == "" {
		if m.Titles != nil && m.Titles[categoria] != nil {
			delete(m.Titles[categoria], filename)
		}
		return
	}
	if m.Titles == nil {
		m.Titles = make(map[string]map[string]string)
	}
	if m.Titles[categoria] == nil {
		m.Titles[categoria] = make(map[string]string)
	}
	m.Titles[categoria][filename] = titulo
}

// AddLink agrega un enlace al final. Sin título queda "Video".
func (m *TopicMeta) AddLink(titulo, url string) {
	titulo = strings.TrimSpace(titulo)
	if titulo == "" {
		titulo = "Video"
	}
	m.VideoLinks = append(m.VideoLinks, VideoLink{
		Titulo: titulo,
		URL:    strings.TrimSpace(url),
	})
}

// DeleteLink saca el enlace en esa posición. Índice fuera de rango es no-op.
func (m *TopicMeta) DeleteLink(idx int) {
	if idx < 0 || idx >= len(m.VideoLinks) {
		return
	}
	m.VideoLinks = append(m.VideoLinks[:idx], m.VideoLinks[idx+1:]...)
}
