package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/infra"
)

// fakeProvider stands in for the chat-completions endpoint and replies with a
// fixed assistant message.
func fakeProvider(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Messages []infra.ChatMessage `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func extraccionConRespuesta(t *testing.T, reply string) ExtraccionService {
	t.Helper()
	srv := fakeProvider(t, reply)
	t.Cleanup(srv.Close)
	return NewExtraccionService(infra.NewExtractorClient(srv.URL, "test-key", "gpt-4o-mini"))
}

func TestExtraerDatosDesdeTexto(t *testing.T) {
	svc := extraccionConRespuesta(t, `{"matricula": "AB123CD", "marca": "Toyota", "año": 2020, "cliente_nombre": "Carlos Pérez"}`)

	texto := "Llegó un Toyota placa AB123CD del 2020, del señor Carlos Pérez"
	resp, err := svc.ExtraerDatos(context.Background(), dto.ExtraerDatosRequest{TextoDictado: &texto})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Datos)
	require.NotNil(t, resp.Datos.Matricula)
	assert.Equal(t, "AB123CD", *resp.Datos.Matricula)
	require.NotNil(t, resp.Datos.Anio)
	assert.Equal(t, 2020, *resp.Datos.Anio)
	assert.Nil(t, resp.Datos.Color)
}

func TestExtraerDatosConCercaMarkdown(t *testing.T) {
	svc := extraccionConRespuesta(t, "```json\n{\"matricula\": \"XYZ789\"}\n```")

	texto := "placa XYZ789"
	resp, err := svc.ExtraerDatos(context.Background(), dto.ExtraerDatosRequest{TextoDictado: &texto})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Datos.Matricula)
	assert.Equal(t, "XYZ789", *resp.Datos.Matricula)
}

func TestExtraerDatosRespuestaNoJSON(t *testing.T) {
	svc := extraccionConRespuesta(t, "Lo siento, no puedo procesar esa solicitud.")

	texto := "placa ABC"
	resp, err := svc.ExtraerDatos(context.Background(), dto.ExtraerDatosRequest{TextoDictado: &texto})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.NotNil(t, resp.RawResponse)
	assert.Contains(t, *resp.RawResponse, "Lo siento")
}

func TestExtraerDatosConImagenEnviaLaImagen(t *testing.T) {
	var capturado struct {
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": `{"matricula": "AB123CD"}`}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	svc := NewExtraccionService(infra.NewExtractorClient(srv.URL, "test-key", "gpt-4o-mini"))

	imagen := "dGVzdC1pbWFnZW4="
	resp, err := svc.ExtraerDatos(context.Background(), dto.ExtraerDatosRequest{ImagenBase64: &imagen})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, capturado.Messages, 2)
	assert.Equal(t, "user", capturado.Messages[1].Role)

	var partes []infra.ContentPart
	require.NoError(t, json.Unmarshal(capturado.Messages[1].Content, &partes))
	require.Len(t, partes, 2)
	assert.Equal(t, "text", partes[0].Type)
	assert.Equal(t, "image_url", partes[1].Type)
	require.NotNil(t, partes[1].ImageURL)
	assert.Equal(t, "data:image/jpeg;base64,"+imagen, partes[1].ImageURL.URL)
}

func TestImagenDataURI(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,Zm9v", imagenDataURI("Zm9v"))
	assert.Equal(t, "data:image/png;base64,Zm9v", imagenDataURI("data:image/png;base64,Zm9v"))
}

func TestExtraerDatosSinEntrada(t *testing.T) {
	svc := extraccionConRespuesta(t, "{}")

	vacio := ""
	_, err := svc.ExtraerDatos(context.Background(), dto.ExtraerDatosRequest{TextoDictado: &vacio})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestStripJSONFence(t *testing.T) {
	casos := map[string]string{
		`{"a":1}`:                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":      `{"a":1}`,
		"```\n{\"a\":1}\n```":          `{"a":1}`,
		"  \n```json\n{\"a\":1}\n``` ": `{"a":1}`,
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, stripJSONFence(entrada))
	}
}
