package petcare

import (
	"context"

	"github.com/BruksfildServices01/pet-scheduler/internal/models"
)

// Repository is the create/read surface over the pet-care tables.
// Store errors (unique, foreign-key, not-null) are returned unchanged.
type Repository interface {
	// -------- User --------
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListPetsByUser(ctx context.Context, userID uint) ([]models.Pet, error)

	// -------- Company --------
	CreateCompany(ctx context.Context, c *models.Company) error
	GetCompanyByID(ctx context.Context, id uint) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)

	// -------- Pet --------
	CreatePet(ctx context.Context, p *models.Pet) error
	GetPetByID(ctx context.Context, id uint) (*models.Pet, error)

	// -------- Services --------
	CreateService(ctx context.Context, s *models.Services) error
	GetServiceByID(ctx context.Context, id uint) (*models.Services, error)
	ListServicesByCompany(ctx context.Context, companyID uint) ([]models.Services, error)

	// -------- Favorites --------
	CreateFavorite(ctx context.Context, f *models.Favorites) error
	ListFavoritesByUser(ctx context.Context, userID uint) ([]models.Favorites, error)

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, a *models.Appointments) error
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointments, error)
	ListAppointmentsByPet(ctx context.Context, petID uint) ([]models.Appointments, error)
	ListAppointmentsByCompany(ctx context.Context, companyID uint) ([]models.Appointments, error)
}
