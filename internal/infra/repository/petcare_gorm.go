package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/pet-scheduler/internal/domain/petcare"
	"github.com/BruksfildServices01/pet-scheduler/internal/models"
)

type PetcareGormRepository struct {
	db *gorm.DB
}

func NewPetcareGormRepository(db *gorm.DB) *PetcareGormRepository {
	return &PetcareGormRepository{db: db}
}

// create inserts a single row. Loaded associations are never upserted
// along with it, so a missing parent surfaces as a foreign-key violation.
func (r *PetcareGormRepository) create(ctx context.Context, v any) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *PetcareGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.create(ctx, u)
}

func (r *PetcareGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PetcareGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PetcareGormRepository) ListPetsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Pet, error) {

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("id_user = ?", userID).
		Order("id ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// --------------------------------------------------
// Company
// --------------------------------------------------

func (r *PetcareGormRepository) CreateCompany(
	ctx context.Context,
	c *models.Company,
) error {
	return r.create(ctx, c)
}

func (r *PetcareGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *PetcareGormRepository) ListCompanies(
	ctx context.Context,
) ([]models.Company, error) {

	var companies []models.Company
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("id ASC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *PetcareGormRepository) CreatePet(
	ctx context.Context,
	p *models.Pet,
) error {
	return r.create(ctx, p)
}

func (r *PetcareGormRepository) GetPetByID(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *PetcareGormRepository) CreateService(
	ctx context.Context,
	s *models.Services,
) error {
	return r.create(ctx, s)
}

func (r *PetcareGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Services, error) {

	var service models.Services
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *PetcareGormRepository) ListServicesByCompany(
	ctx context.Context,
	companyID uint,
) ([]models.Services, error) {

	var services []models.Services
	if err := r.db.WithContext(ctx).
		Where("id_company = ?", companyID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Favorites
// --------------------------------------------------

func (r *PetcareGormRepository) CreateFavorite(
	ctx context.Context,
	f *models.Favorites,
) error {
	return r.create(ctx, f)
}

func (r *PetcareGormRepository) ListFavoritesByUser(
	ctx context.Context,
	userID uint,
) ([]models.Favorites, error) {

	var favs []models.Favorites
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id_user = ?", userID).
		Order("id ASC").
		Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *PetcareGormRepository) CreateAppointment(
	ctx context.Context,
	a *models.Appointments,
) error {
	return r.create(ctx, a)
}

// GetAppointmentByID loads the Service so Serialize can resolve id_company.
func (r *PetcareGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointments, error) {

	var ap models.Appointments
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Pet").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *PetcareGormRepository) ListAppointmentsByPet(
	ctx context.Context,
	petID uint,
) ([]models.Appointments, error) {

	var apps []models.Appointments
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id_pet = ?", petID).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *PetcareGormRepository) ListAppointmentsByCompany(
	ctx context.Context,
	companyID uint,
) ([]models.Appointments, error) {

	var apps []models.Appointments
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Joins("JOIN services ON services.id = appointments.id_service").
		Where("services.id_company = ?", companyID).
		Order("appointments.id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ petcare.Repository = (*PetcareGormRepository)(nil)
