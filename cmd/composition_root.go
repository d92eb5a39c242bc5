package cmd

import (
	httpin "github.com/DevonBastiansz/courier-manager/internal/adapters/in/http"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/bcrypthash"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/jwtsign"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/postgres"
	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/queries"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
// All dependency decisions live here; nothing below this layer knows which
// concrete implementations are in play.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     bcrypthash.Hasher
	signer     jwtsign.Signer
	policy     services.AccessPolicy
}

// NewCompositionRoot creates the composition root from configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     bcrypthash.NewHasher(config.BcryptCost),
		signer:     jwtsign.NewSigner([]byte(config.JWTSecret), config.TokenTTL),
		policy:     services.NewAccessPolicy(),
	}
}

// CreateHTTPServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.signer,
		c.CreateRegisterAccountCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentStatusCommandHandler(),
		c.CreateAuthenticateAccountQueryHandler(),
		c.CreateTrackShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAuthenticateAccountQueryHandler() queries.AuthenticateAccountQueryHandler {
	return queries.NewAuthenticateAccountQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB, c.policy)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
