// Package session implementa el gate de sesión: un objeto explícito que
// mantiene el par usuario/token autenticado, lo restaura desde el
// almacenamiento persistente al arranque y notifica transiciones a sus
// suscriptores. Sustituye la sesión global ambiente por un handle inyectable.
package session

import (
	"context"
	"sync"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/pkg/logger"
)

// State estado del gate.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading" // restauración inicial o sign-in en curso
	StateAuthenticated   State = "authenticated"
)

// Snapshot vista inmutable del estado actual. Invariante: User y Token
// están ambos presentes (Authenticated) o ambos ausentes.
type Snapshot struct {
	State State
	User  *dto.UserResponse
	Token string
}

// Stored sesión serializada en el almacenamiento persistente.
// Token y usuario viven bajo una única clave: se guardan y se borran juntos.
type Stored struct {
	Token string           `json:"token"`
	User  dto.UserResponse `json:"user"`
}

// Store puerto de almacenamiento persistente de la sesión.
// Load devuelve (nil, nil) cuando no hay sesión guardada.
type Store interface {
	Load(ctx context.Context) (*Stored, error)
	Save(ctx context.Context, s Stored) error
	Clear(ctx context.Context) error
}

// Authenticator colaborador de autenticación. Lo implementa el caso de uso
// de auth; en tests se inyecta un fake.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Validate(ctx context.Context, token string) (*dto.UserResponse, error)
	Logout(ctx context.Context, token string) error
}

// Gate máquina de estados de sesión con notificación a suscriptores.
type Gate struct {
	store Store
	auth  Authenticator
	log   *logger.Logger

	mu      sync.Mutex
	state   State
	user    *dto.UserResponse
	token   string
	subs    map[int]chan Snapshot
	nextSub int
}

// NewGate construye el gate en estado Unauthenticated.
func NewGate(store Store, auth Authenticator, log *logger.Logger) *Gate {
	return &Gate{
		store: store,
		auth:  auth,
		log:   log,
		state: StateUnauthenticated,
		subs:  make(map[int]chan Snapshot),
	}
}

// Restore carga la sesión persistida al arranque y la valida contra el
// backend. Token ausente o inválido deja el gate en Unauthenticated y
// limpia el almacenamiento.
func (g *Gate) Restore(ctx context.Context) Snapshot {
	g.transition(StateLoading, nil, "")

	stored, err := g.store.Load(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("sesión: fallo al leer almacenamiento, se asume sin sesión")
		return g.transition(StateUnauthenticated, nil, "")
	}
	if stored == nil || stored.Token == "" {
		return g.transition(StateUnauthenticated, nil, "")
	}

	user, err := g.auth.Validate(ctx, stored.Token)
	if err != nil {
		// Token expirado, inválido o backend inaccesible: sesión local fuera.
		g.log.Info().Err(err).Msg("sesión: token persistido inválido, limpiando")
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.log.Warn().Err(clearErr).Msg("sesión: fallo al limpiar almacenamiento")
		}
		return g.transition(StateUnauthenticated, nil, "")
	}

	return g.transition(StateAuthenticated, user, stored.Token)
}

// SignIn autentica con email/password, persiste token+usuario y pasa a
// Authenticated. Ante fallo no se persiste nada y el gate vuelve a
// Unauthenticated; el error se devuelve para que la capa superior lo muestre.
func (g *Gate) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	g.transition(StateLoading, nil, "")

	out, err := g.auth.Login(ctx, email, password)
	if err != nil {
		return g.transition(StateUnauthenticated, nil, ""), err
	}

	if err := g.store.Save(ctx, Stored{Token: out.Token, User: out.User}); err != nil {
		// La sesión sigue siendo válida en memoria aunque no se haya persistido.
		g.log.Warn().Err(err).Msg("sesión: fallo al persistir, la sesión no sobrevivirá al reinicio")
	}

	user := out.User
	return g.transition(StateAuthenticated, &user, out.Token), nil
}

// SignOut borra la sesión local y pasa a Unauthenticated sin importar el
// resultado del logout remoto: un fallo ahí se registra, nunca se propaga
// ni bloquea el cierre local.
func (g *Gate) SignOut(ctx context.Context) Snapshot {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()

	if token != "" {
		if err := g.auth.Logout(ctx, token); err != nil {
			g.log.Warn().Err(err).Msg("sesión: logout remoto falló, se ignora")
		}
	}
	if err := g.store.Clear(ctx); err != nil {
		g.log.Warn().Err(err).Msg("sesión: fallo al limpiar almacenamiento")
	}
	return g.transition(StateUnauthenticated, nil, "")
}

// Snapshot devuelve el estado actual.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{State: g.state, User: g.user, Token: g.token}
}

// Subscribe registra un suscriptor y devuelve su canal y la función para
// cancelar. El canal tiene buffer; si el suscriptor no consume a tiempo se
// descartan notificaciones intermedias (siempre puede pedir Snapshot()).
func (g *Gate) Subscribe() (<-chan Snapshot, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSub
	g.nextSub++
	ch := make(chan Snapshot, 8)
	g.subs[id] = ch

	cancel := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if c, ok := g.subs[id]; ok {
			delete(g.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// transition actualiza el estado bajo lock y notifica a los suscriptores.
func (g *Gate) transition(state State, user *dto.UserResponse, token string) Snapshot {
	g.mu.Lock()
	g.state = state
	g.user = user
	g.token = token
	snap := Snapshot{State: state, User: user, Token: token}
	for _, ch := range g.subs {
		select {
		case ch <- snap:
		default: // suscriptor lento: se descarta la notificación
		}
	}
	g.mu.Unlock()
	return snap
}
