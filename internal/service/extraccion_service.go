package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/infra"
)

const extraccionSystemPrompt = `Eres un asistente especializado en talleres mecánicos. Tu trabajo es extraer información específica de vehículos a partir de texto dictado o imágenes de matrículas.

Cuando recibas información, extrae y estructura los siguientes datos en formato JSON:
- matricula: número de matrícula/placa del vehículo
- marca: marca del vehículo (Toyota, Honda, etc.)
- modelo: modelo específico del vehículo
- año: año del vehículo
- color: color del vehículo
- kilometraje: kilometraje actual si se menciona
- cliente_nombre: nombre del cliente
- cliente_telefono: teléfono del cliente si se menciona
- cliente_empresa: nombre de la empresa si es una flota
- observaciones: cualquier observación adicional sobre el estado del vehículo

Si algún dato no está disponible, usa null. Responde SOLO con el JSON, sin texto adicional.`

type ExtraccionService interface {
	ExtraerDatos(ctx context.Context, req dto.ExtraerDatosRequest) (*dto.ExtraerDatosResponse, error)
}

type extraccionService struct {
	client  *infra.ExtractorClient
	breaker *infra.CircuitBreaker
}

func NewExtraccionService(client *infra.ExtractorClient) ExtraccionService {
	return &extraccionService{
		client:  client,
		breaker: infra.NewCircuitBreaker(infra.DefaultCBConfig()),
	}
}

// ExtraerDatos sends dictated text (or a plate photo) through the AI provider
// and maps the reply onto the structured vehicle/client fields. A provider
// reply that is not valid JSON is NOT an error at the HTTP level: the raw text
// comes back with success=false so the operator can transcribe by hand.
func (s *extraccionService) ExtraerDatos(ctx context.Context, req dto.ExtraerDatosRequest) (*dto.ExtraerDatosResponse, error) {
	var userMsg infra.ChatMessage
	switch {
	case req.ImagenBase64 != nil && *req.ImagenBase64 != "":
		// The image travels as a multimodal content part next to the
		// instruction, OpenAI vision style.
		userMsg = infra.ChatMessage{
			Role: "user",
			Content: []infra.ContentPart{
				{
					Type: "text",
					Text: "Extrae la información de la matrícula/placa de este vehículo y cualquier otra información visible del vehículo (marca, modelo, color, etc.). Responde en formato JSON.",
				},
				{
					Type:     "image_url",
					ImageURL: &infra.ImageURL{URL: imagenDataURI(*req.ImagenBase64)},
				},
			},
		}
	case req.TextoDictado != nil && *req.TextoDictado != "":
		userMsg = infra.ChatMessage{
			Role:    "user",
			Content: fmt.Sprintf("Extrae la información del vehículo del siguiente texto dictado: %s", *req.TextoDictado),
		}
	default:
		return nil, apierror.Validation("Se requiere texto dictado o imagen")
	}

	messages := []infra.ChatMessage{
		{Role: "system", Content: extraccionSystemPrompt},
		userMsg,
	}

	var raw string
	err := s.breaker.Execute(func() error {
		var callErr error
		raw, callErr = s.client.Complete(ctx, messages)
		return callErr
	})
	if err != nil {
		log.Error().Err(err).Msg("extraccion: proveedor de IA no disponible")
		return nil, fmt.Errorf("error en extracción de datos: %w", err)
	}

	jsonStr := stripJSONFence(raw)

	var datos dto.DatosExtraidos
	if err := json.Unmarshal([]byte(jsonStr), &datos); err != nil {
		log.Warn().Str("raw", raw).Msg("extraccion: respuesta de IA no es JSON válido")
		errMsg := "Error parsing AI response"
		return &dto.ExtraerDatosResponse{
			Success:     false,
			Error:       &errMsg,
			RawResponse: &raw,
		}, nil
	}

	return &dto.ExtraerDatosResponse{Success: true, Datos: &datos}, nil
}

// imagenDataURI wraps raw base64 in a data URI; inputs that already carry a
// data: prefix pass through untouched.
func imagenDataURI(b64 string) string {
	if strings.HasPrefix(b64, "data:") {
		return b64
	}
	return "data:image/jpeg;base64," + b64
}

// stripJSONFence removes a markdown code fence the model sometimes wraps
// around its JSON reply.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
