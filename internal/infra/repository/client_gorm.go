package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// withConn checks out a dedicated connection for fn and releases it when fn
// returns, on every path. A failed checkout is a connection failure; errors
// from fn are classified into the domain error kinds.
func (r *ClientGormRepository) withConn(
	ctx context.Context,
	fn func(conn *gorm.DB) error,
) error {

	acquired := false
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		acquired = true
		return fn(conn)
	})
	if err == nil {
		return nil
	}
	if !acquired {
		return fmt.Errorf("%w: %w", domain.ErrConnectionFailure, err)
	}
	return classify(err)
}

// --------------------------------------------------
// Schema
// --------------------------------------------------

func (r *ClientGormRepository) InitializeSchema(ctx context.Context) error {
	return r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.AutoMigrate(&models.Client{}, &models.Phone{})
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	in domain.NewClient,
) (uint, error) {

	if err := in.Validate(); err != nil {
		return 0, err
	}

	client := models.Client{
		Name:       in.Name,
		Secondname: in.Secondname,
		Email:      in.Email,
	}

	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&client).Error
	}); err != nil {
		return 0, err
	}

	return client.ID, nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	clientID uint,
	fields domain.Fields,
) error {

	updates, err := fields.Updates()
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	return r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			for _, u := range updates {
				if err := tx.
					Model(&models.Client{}).
					Where("client_id = ?", clientID).
					Update(u.Field.Column(), u.Value).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	clientID uint,
) (*uint, error) {

	var ids []uint
	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.
			Raw("DELETE FROM client_info WHERE client_id = ? RETURNING client_id", clientID).
			Scan(&ids).Error
	}); err != nil {
		return nil, err
	}

	return first(ids), nil
}

func (r *ClientGormRepository) FindClients(
	ctx context.Context,
	filters domain.Fields,
) ([]models.ClientRow, error) {

	conds, err := filters.Filters()
	if err != nil {
		return nil, err
	}

	var rows []models.ClientRow
	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		q := conn.
			Table("client_info AS c").
			Select("c.client_id, c.client_name, c.client_secondname, c.client_email, p.phone").
			Joins("LEFT JOIN client_phone AS p ON p.client_id = c.client_id")

		// Qualified() only yields allow-listed columns.
		for _, f := range conds {
			q = q.Where(
				fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, f.Field.Qualified()),
				f.Pattern(),
			)
		}

		return q.Order("c.client_id ASC, p.id ASC").Scan(&rows).Error
	}); err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Phone
// --------------------------------------------------

func (r *ClientGormRepository) AddPhone(
	ctx context.Context,
	clientID uint,
	phone string,
) (*models.Phone, error) {

	if err := domain.ValidatePhone(phone); err != nil {
		return nil, err
	}

	p := models.Phone{
		ClientID: clientID,
		Phone:    phone,
	}

	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&p).Error
	}); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *ClientGormRepository) DeletePhone(
	ctx context.Context,
	clientID uint,
	phone string,
) (*uint, error) {

	var ids []uint
	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.
			Raw("DELETE FROM client_phone WHERE client_id = ? AND phone = ? RETURNING id", clientID, phone).
			Scan(&ids).Error
	}); err != nil {
		return nil, err
	}

	return first(ids), nil
}

func (r *ClientGormRepository) ListPhones(
	ctx context.Context,
	clientID uint,
) ([]models.Phone, error) {

	var phones []models.Phone
	if err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.
			Where("client_id = ?", clientID).
			Order("id ASC").
			Find(&phones).Error
	}); err != nil {
		return nil, err
	}

	return phones, nil
}

// first returns the lowest identity, or nil for an empty result.
func first(ids []uint) *uint {
	if len(ids) == 0 {
		return nil
	}
	lowest := ids[0]
	for _, id := range ids[1:] {
		if id < lowest {
			lowest = id
		}
	}
	return &lowest
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
