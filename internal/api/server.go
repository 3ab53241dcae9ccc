package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/linkt-app/linkt-api/docs"
	v1 "github.com/linkt-app/linkt-api/internal/api/handler/v1"
	"github.com/linkt-app/linkt-api/internal/api/middleware"
	"github.com/linkt-app/linkt-api/internal/config"
	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/repository"
	"github.com/linkt-app/linkt-api/internal/repository/dao"
	"github.com/linkt-app/linkt-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	eventHandler := s.initEventHandler(db)
	ticketHandler := s.initTicketHandler(db)
	savedEventHandler := s.initSavedEventHandler(db)
	adminHandler := s.initAdminHandler(db)
	s.MountHandlers(authHandler, userHandler, eventHandler, ticketHandler, savedEventHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewEventService(eventRepo, ticketRepo)
	regSvc := service.NewTicketService(ticketRepo, eventRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewEventHandler(svc, regSvc, uSvc)

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewTicketService(ticketRepo, eventRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewTicketHandler(svc, uSvc)

	return handler
}

func (s *Server) initSavedEventHandler(db *gorm.DB) *v1.SavedEventHandler {
	savedEventRepo := repository.NewSavedEventRepository(dao.NewSavedEventDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewSavedEventService(savedEventRepo, eventRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewSavedEventHandler(svc, uSvc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewStatsService(eventRepo, ticketRepo, userRepo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	ticketHandler *v1.TicketHandler,
	savedEventHandler *v1.SavedEventHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	adminOnly := middleware.RequireUserType(domain.UserTypeAdministrator)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	events := s.Router.Group(basePath)
	{
		// Browsing events is public; mutations and organizer views are not.
		events.GET("/events", eventHandler.HandleGetEvents)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)

		authed := events.Group("", verifyJWT)
		{
			authed.GET("/events/organizer", eventHandler.HandleGetOrganizerEvents)
			authed.POST("/events", eventHandler.HandleCreateEvent)
			authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
			authed.GET("/events/:eventID/registered-students", eventHandler.HandleGetRegisteredStudents)
		}
	}

	tickets := s.Router.Group(basePath, verifyJWT)
	{
		tickets.POST("/tickets", ticketHandler.HandlePurchaseTicket)
		tickets.GET("/tickets/me", ticketHandler.HandleGetMyTickets)
		tickets.GET("/tickets/:ticketID", ticketHandler.HandleGetTicket)
		tickets.POST("/tickets/events/:eventID/validate", ticketHandler.HandleValidateTicket)
		tickets.GET("/tickets/events/:eventID/scan-stats", ticketHandler.HandleGetScanStats)
	}

	savedEvents := s.Router.Group(basePath, verifyJWT)
	{
		savedEvents.POST("/saved-events", savedEventHandler.HandleSaveEvent)
		savedEvents.GET("/saved-events/me", savedEventHandler.HandleGetMySavedEvents)
		savedEvents.GET("/saved-events/check/:eventID", savedEventHandler.HandleCheckSavedEvent)
		savedEvents.DELETE("/saved-events/event/:eventID", savedEventHandler.HandleUnsaveEvent)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/users/me", userHandler.HandleGetCurrentUser)
		users.GET("/users/pending-organizers", adminOnly, userHandler.HandleGetPendingOrganizers)
		users.PUT("/users/approve-organizer/:userID", adminOnly, userHandler.HandleApproveOrganizer)
	}

	admins := s.Router.Group(basePath, verifyJWT, adminOnly)
	{
		admins.GET("/administrators/stats/global", adminHandler.HandleGetGlobalStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Linkt API"
	docs.SwaggerInfo.Description = "Event ticketing API for student events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
