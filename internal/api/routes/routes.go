package routes

import (
	"field-ops-backend/internal/api/handlers"
	"field-ops-backend/internal/api/middleware"
	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/config"
	"field-ops-backend/internal/logger"
	"field-ops-backend/internal/repository"
	"field-ops-backend/internal/scheduling"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "field-ops-backend/docs"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	crewMemberRepo := repository.NewCrewMemberRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	jobRepo := repository.NewJobRepository(db)
	dayPlanRepo := repository.NewDayPlanRepository(db)
	scheduleEventRepo := repository.NewScheduleEventRepository(db)
	kitRepo := repository.NewKitRepository(db)
	kitAssignmentRepo := repository.NewKitAssignmentRepository(db)
	kitOverrideLogRepo := repository.NewKitOverrideLogRepository(db)
	crewAssignmentRepo := repository.NewCrewAssignmentRepository(db)

	// Work day boundary for the slot suggester
	workDay := scheduling.WorkDay{
		Start: cfg.WorkDayStartOffset(),
		End:   cfg.WorkDayEndOffset(),
	}

	// Initialize services
	dayPlanService := service.NewDayPlanService(dayPlanRepo, scheduleEventRepo, crewMemberRepo, jobRepo, validator, workDay)
	kitService := service.NewKitService(kitRepo, validator)
	kitAssignmentService := service.NewKitAssignmentService(kitAssignmentRepo, kitOverrideLogRepo, kitRepo, scheduleEventRepo, crewMemberRepo, validator)
	crewAssignmentService := service.NewCrewAssignmentService(crewAssignmentRepo, crewMemberRepo, dayPlanRepo, scheduleEventRepo, validator)
	crewMemberService := service.NewCrewMemberService(crewMemberRepo, validator)
	customerService := service.NewCustomerService(customerRepo, validator)
	jobService := service.NewJobService(jobRepo, customerRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		logger.New().WithError(err).Fatal("failed to initialize auth service")
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	dayPlanHandler := handlers.NewDayPlanHandler(dayPlanService)
	kitHandler := handlers.NewKitHandler(kitService)
	kitAssignmentHandler := handlers.NewKitAssignmentHandler(kitAssignmentService)
	crewAssignmentHandler := handlers.NewCrewAssignmentHandler(crewAssignmentService)
	crewMemberHandler := handlers.NewCrewMemberHandler(crewMemberService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	jobHandler := handlers.NewJobHandler(jobService)

	// Health endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Day plans
		dayPlans := v1.Group("/day-plans")
		{
			dayPlans.POST("", dayPlanHandler.CreateDayPlan)
			dayPlans.GET("", dayPlanHandler.FindDayPlan)
			dayPlans.GET("/:id", dayPlanHandler.GetDayPlan)
			dayPlans.POST("/:id/events", dayPlanHandler.InsertEvent)
			dayPlans.POST("/:id/transition", dayPlanHandler.TransitionDayPlan)
			dayPlans.GET("/:id/suggest-slot", dayPlanHandler.SuggestSlot)
			dayPlans.GET("/:id/crew-assignment", crewAssignmentHandler.GetActiveForDayPlan)
		}

		// Schedule events
		events := v1.Group("/events")
		{
			events.POST("/:id/cancel", dayPlanHandler.CancelEvent)
			events.GET("/:id/kit-assignment", kitAssignmentHandler.GetActiveAssignment)
			events.GET("/:id/kit-assignments", kitAssignmentHandler.GetAssignmentHistory)
			events.GET("/:id/crew-assignment", crewAssignmentHandler.GetActiveForEvent)
		}

		// Kit catalog
		kits := v1.Group("/kits")
		{
			kits.POST("", kitHandler.CreateKit)
			kits.GET("", kitHandler.ListKits)
			kits.GET("/:id", kitHandler.GetKit)
			kits.GET("/code/:code", kitHandler.GetKitByCode)
			kits.POST("/:id/items", kitHandler.AddItem)
			kits.DELETE("/:id/items/:item_id", kitHandler.RemoveItem)
			kits.POST("/:id/variants", kitHandler.AddVariant)
			kits.POST("/:id/deactivate", kitHandler.DeactivateKit)
			kits.DELETE("/:id", kitHandler.DeleteKit)
		}

		// Kit assignments and the override ledger
		kitAssignments := v1.Group("/kit-assignments")
		{
			kitAssignments.POST("", kitAssignmentHandler.AssignKit)
			kitAssignments.GET("/:id/verify", kitAssignmentHandler.VerifyAssignment)
			kitAssignments.POST("/:id/overrides", kitAssignmentHandler.RecordOverride)
			kitAssignments.GET("/:id/overrides", kitAssignmentHandler.ListOverrides)
		}

		// Tenant-wide override ledger for audit consumers
		v1.GET("/kit-overrides", kitAssignmentHandler.ListAllOverrides)

		// Crew assignments
		v1.POST("/crew-assignments", crewAssignmentHandler.AssignCrew)

		// Crew members
		crewMembers := v1.Group("/crew-members")
		{
			crewMembers.POST("", crewMemberHandler.CreateCrewMember)
			crewMembers.GET("", crewMemberHandler.ListCrewMembers)
			crewMembers.GET("/:id", crewMemberHandler.GetCrewMember)
			crewMembers.PUT("/:id", crewMemberHandler.UpdateCrewMember)
			crewMembers.DELETE("/:id", crewMemberHandler.DeleteCrewMember)
		}

		// Customers
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("", customerHandler.ListCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		// Jobs
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PUT("/:id", jobHandler.UpdateJob)
			jobs.DELETE("/:id", jobHandler.DeleteJob)
		}
	}

	return router
}
