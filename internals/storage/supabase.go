package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client habla con Supabase Storage por su API REST usando la service key.
// Una instancia por proceso; es segura para uso concurrente.
type Client struct {
	BaseURL string
	APIKey  string
	Bucket  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey, bucket string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Bucket:  bucket,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ObjectInfo es la entrada que devuelve el listado del bucket.
type ObjectInfo struct {
	Name      string         `json:"name"`
	UpdatedAt string         `json:"updated_at"`
	Metadata  ObjectMetadata `json:"metadata"`
}

type ObjectMetadata struct {
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

func (c *Client) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, key)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	return c.HTTP.Do(req)
}

// List enumera los hijos directos de un prefijo, ordenados por nombre.
func (c *Client) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	body, err := json.Marshal(map[string]interface{}{
		"prefix": prefix,
		"limit":  1000,
		"offset": 0,
		"sortBy": map[string]string{"column": "name", "order": "asc"},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/storage/v1/object/list/%s", c.BaseURL, c.Bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("no se pudo listar %q: %w", prefix, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listado falló status %d: %s", resp.StatusCode, string(raw))
	}

	var objs []ObjectInfo
	if err := json.NewDecoder(resp.Body).Decode(&objs); err != nil {
		return nil, fmt.Errorf("respuesta de listado inválida: %w", err)
	}
	return objs, nil
}

func (c *Client) write(ctx context.Context, method, key string, data []byte, contentType string, upsert bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	if upsert {
		req.Header.Set("x-upsert", "true")
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Upload crea o pisa un objeto. Si el POST falla se reintenta una única vez
// por la vía de update (PUT); si también falla, se devuelve el diagnóstico
// del backend para que el editor lo vea.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	errPost := c.write(ctx, http.MethodPost, key, data, contentType, true)
	if errPost == nil {
		return nil
	}
	log.Printf("⚠️ Upload de %s falló (%v), se reintenta vía update", key, errPost)

	if errPut := c.write(ctx, http.MethodPut, key, data, contentType, false); errPut != nil {
		return fmt.Errorf("upload falló (%v) y update también: %w", errPost, errPut)
	}
	return nil
}

// Download trae los bytes de un objeto. Un objeto inexistente devuelve
// (nil, nil): quien llama decide qué hacer con la ausencia.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.objectURL(key), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("no se pudo descargar %q: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("descarga falló status %d: %s", resp.StatusCode, string(raw))
	}
	return io.ReadAll(resp.Body)
}

// Remove borra un lote de claves en una sola llamada.
func (c *Client) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	body, err := json.Marshal(map[string][]string{"prefixes": keys})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s", c.BaseURL, c.Bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("no se pudo borrar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("borrado falló status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// PublicURL resuelve la URL pública de un objeto, con la ruta encodeada
// por segmento para que claves con caracteres especiales sigan siendo links válidos.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, c.Bucket, escapePath(key))
}
