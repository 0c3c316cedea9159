package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/axelse03-gif/reybanpac/metrics"
	"github.com/axelse03-gif/reybanpac/models"

	"go.uber.org/zap"
)

// FallbackReply is appended when the completion request fails.
const FallbackReply = "Lo siento, ocurrió un error. Inténtalo de nuevo."

var (
	// ErrEmptyMessage is returned for empty or whitespace-only sends.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy is returned when a request is already in flight. The send is
	// dropped, not queued.
	ErrBusy = errors.New("a reply is still pending")
)

// State is the request state of a conversation.
type State string

const (
	// StateIdle: no request has been issued yet.
	StateIdle State = "idle"
	// StateAwaiting: exactly one request is in flight.
	StateAwaiting State = "awaiting"
	// StateDone: the last request resolved.
	StateDone State = "done"
)

// AcceptsSend reports whether a new message may be sent in this state.
func (s State) AcceptsSend() bool {
	return s != StateAwaiting
}

// SuggestedTopics are the quick-reply chips under the input box.
var SuggestedTopics = []string{"Beneficios", "Capacitaciones", "Permisos"}

// Conversation is the turn history of one chatbot screen. It is safe for
// concurrent use; at most one completion request is in flight at a time.
type Conversation struct {
	completer Completer
	logger    *zap.Logger
	now       func() time.Time

	mu         sync.Mutex
	turns      []models.Turn
	state      State
	lastActive time.Time
}

// NewConversation starts a conversation seeded with the welcome exchange.
func NewConversation(completer Completer, logger *zap.Logger) *Conversation {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Conversation{
		completer: completer,
		logger:    logger,
		now:       time.Now,
		state:     StateIdle,
	}
	c.lastActive = c.now()
	c.turns = welcomeTurns(c.lastActive)
	return c
}

// Turns returns a copy of the history.
func (c *Conversation) Turns() []models.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Turn(nil), c.turns...)
}

func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastActive is the time of the last accepted send or resolved reply.
func (c *Conversation) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

// Touch marks the conversation as in use without sending anything.
func (c *Conversation) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()
}

// Send appends the user's message, asks the completer for a reply and
// appends it. It returns the user turn and the bot turn. Empty messages
// and sends made while a reply is pending return an error and leave the
// history untouched.
//
// Caller cancellation does not abort an issued request: once the user turn
// is appended a bot turn always follows.
func (c *Conversation) Send(ctx context.Context, text string) ([]models.Turn, error) {
	if strings.TrimSpace(text) == "" {
		metrics.ChatSendsDropped.WithLabelValues("empty").Inc()
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	if !c.state.AcceptsSend() {
		c.mu.Unlock()
		metrics.ChatSendsDropped.WithLabelValues("busy").Inc()
		return nil, ErrBusy
	}
	history := append([]models.Turn(nil), c.turns...)
	userTurn := models.Turn{Origin: models.OriginUser, Content: models.PlainText(text), CreatedAt: c.now()}
	c.turns = append(c.turns, userTurn)
	c.state = StateAwaiting
	c.lastActive = userTurn.CreatedAt
	c.mu.Unlock()

	reply, err := c.completer.Complete(context.WithoutCancel(ctx), BuildPrompt(history, text))
	if err == nil && reply == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		c.logger.Warn("chatbot completion failed, using fallback reply", zap.Error(err))
		metrics.ChatCompletions.WithLabelValues("fallback").Inc()
		reply = FallbackReply
	} else {
		metrics.ChatCompletions.WithLabelValues("success").Inc()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	botTurn := models.Turn{Origin: models.OriginBot, Content: models.PlainText(reply), CreatedAt: c.now()}
	c.turns = append(c.turns, botTurn)
	c.state = StateDone
	c.lastActive = botTurn.CreatedAt

	return []models.Turn{userTurn, botTurn}, nil
}

func welcomeTurns(at time.Time) []models.Turn {
	return []models.Turn{
		{
			Origin:    models.OriginBot,
			Content:   models.PlainText("¡Hola! Soy JuniorPac, tu asistente virtual. ¿Cómo puedo ayudarte hoy?"),
			CreatedAt: at,
		},
		{
			Origin:    models.OriginUser,
			Content:   models.PlainText("¿Cómo funciona el sistema de referidos?"),
			CreatedAt: at,
		},
		{
			Origin: models.OriginBot,
			Content: models.StructuredBlock(
				models.Section{Body: "¡Claro! El sistema de referidos te permite ganar puntos y recompensas al recomendarnos talentos de tu comunidad."},
				models.Section{
					Title: "1. Recomendar un nuevo talento:",
					Body:  "Ingresas los datos de tu referido y el sistema genera un token único en blockchain para asegurar la transparencia.",
				},
				models.Section{
					Title: "2. Seguimiento del referido:",
					Body:  "Puedes ver el estado de tu referido: Pendiente, Activo o Avanzado.",
				},
				models.Section{
					Title: "3. Acumulación de puntos/recompensas:",
					Body:  "Ganas puntos a medida que tu referido avanza en el proceso. Todo queda registrado de forma segura en blockchain.",
				},
				models.Section{Body: "¡Te invito a explorar la sección de 'Referidos' en el menú para comenzar!"},
			),
			CreatedAt: at,
		},
	}
}
