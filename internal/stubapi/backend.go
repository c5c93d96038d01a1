package stubapi

import (
	"database/sql"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

// account is a user together with its password hash. The hash never leaves
// the package.
type account struct {
	user         models.User
	passwordHash []byte
}

// Backend holds every collection of the stub API. It is safe for concurrent
// use.
type Backend struct {
	accounts  accountRepository
	docks     *table[models.Dock]
	ships     *table[models.Ship]
	berthings *table[models.Berthing]

	// resets maps the HMAC of an outstanding reset token to a user ID.
	resets   map[string]string
	resetsMu sync.Mutex

	ids utils.IDGenerator
	now func() time.Time

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	bcryptCost    int

	logger *logger.Logger
}

// Option customizes a Backend.
type Option func(*Backend)

// WithBcryptCost overrides the bcrypt cost of stored password hashes.
func WithBcryptCost(cost int) Option {
	return func(b *Backend) {
		b.bcryptCost = cost
	}
}

// WithClock overrides the time source used for timestamps and the current
// berthings view.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// WithPostgres keeps accounts in the "accounts" table of db instead of
// process memory. The schema must already be migrated, see
// [NewConnectPostgres].
func WithPostgres(db *sql.DB) Option {
	return func(b *Backend) {
		if db != nil {
			b.accounts = newPostgresAccounts(db, b.logger)
		}
	}
}

// WithIDGenerator overrides the source of document identifiers.
func WithIDGenerator(ids utils.IDGenerator) Option {
	return func(b *Backend) {
		if ids != nil {
			b.ids = ids
		}
	}
}

func NewBackend(cfg config.App, logger *logger.Logger, opts ...Option) *Backend {
	b := &Backend{
		accounts:      newMemoryAccounts(),
		docks:         newTable[models.Dock](),
		ships:         newTable[models.Ship](),
		berthings:     newTable[models.Berthing](),
		resets:        make(map[string]string),
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    bcrypt.DefaultCost,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	logger.Debug().Msg("stub backend created")
	return b
}

func (b *Backend) timestamp() time.Time {
	return b.now().UTC().Truncate(time.Millisecond)
}
