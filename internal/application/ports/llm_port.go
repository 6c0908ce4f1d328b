package ports

import "context"

// LLMService define el puerto de salida para los servicios de
// inteligencia artificial. Cualquier adaptador (Anthropic, OpenAI, mock)
// debe implementar esta interfaz; la capa de aplicación solo conoce este
// contrato, no la implementación concreta.
type LLMService interface {
	// Complete envía un prompt de sistema y uno de usuario y devuelve el
	// texto generado. El contexto debe llevar timeout: las llamadas a
	// LLMs pueden demorar varios segundos.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
