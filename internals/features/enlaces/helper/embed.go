package helper

import (
	"net/url"
	"strings"
)

const drivePreviewBase = "https://drive.google.com/file/d/"

// ShouldEmbed decide si un enlace se muestra como reproductor embebido
// o como hipervínculo pelado.
func ShouldEmbed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	if strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be") || strings.Contains(host, "vimeo.com") {
		return true
	}
	return strings.Contains(host, "drive.google.com") && strings.Contains(rawURL, "/preview")
}

// DrivePreviewURL reescribe un enlace de Drive compartido a su forma
// embebible /preview. Reconoce las dos formas (path /file/d/{id} y query
// ?id=); cualquier otra cosa pasa sin tocar.
func DrivePreviewURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if !strings.Contains(strings.ToLower(u.Host), "drive.google.com") {
		return rawURL
	}

	if i := strings.Index(u.Path, "/file/d/"); i >= 0 {
		rest := u.Path[i+len("/file/d/"):]
		if j := strings.Index(rest, "/"); j >= 0 {
			rest = rest[:j]
		}
		if rest != "" {
			return drivePreviewBase + rest + "/preview"
		}
		return rawURL
	}

	if id := u.Query().Get("id"); id != "" {
		return drivePreviewBase + id + "/preview"
	}
	return rawURL
}

// EncodeURL percent-encodea solo la parte de path (scheme, host y query
// quedan como están) para que claves con caracteres especiales rindan
// hipervínculos válidos.
func EncodeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return rawURL
	}

	segs := strings.Split(u.Path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}

	out := u.Scheme + "://" + u.Host + strings.Join(segs, "/")
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.Fragment
	}
	return out
}
