package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
	"github.com/ruslanbaghirov/eventa-app/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient     *supabase.Client
	MongoDBClient      *mongo.Client
	UserService        *services.UserService
	EventService       *services.EventService
	RSVPService        *services.RSVPService
	SavedEventsService *services.SavedEventsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)
	userService := services.NewUserService(supa)
	eventService := services.NewEventService(supa, supa)
	rsvpService := services.NewRSVPService(supa, supa)
	savedService := services.NewSavedEventsService(mongoRepo)

	return &Container{
		Logger:             logger,
		Cloudinary:         cloudinary,
		SupabaseClient:     supabaseClient,
		MongoDBClient:      mongoDBClient,
		UserService:        userService,
		EventService:       eventService,
		RSVPService:        rsvpService,
		SavedEventsService: savedService,
	}
}
