package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"
	"timeclock/backend/internal/service/pin"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail resolves a user for password sign-in. Only ACTIVE accounts may
// sign in.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("email = ? AND deleted_at IS NULL", email).
		Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("invalid credentials"),
			Status: http.StatusUnauthorized,
		}
	}

	if detail.Status == nil || *detail.Status != "ACTIVE" {
		return entity.User{}, &web.Error{
			Err:    errors.New("account is inactive"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				u.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(u.email ilike '%s' OR u.first_name ilike '%s' OR u.last_name ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		role := strings.ToUpper(strings.Replace(*filter.Role, "'", "", -1))
		whereQuery += fmt.Sprintf(" AND u.role = '%s'", role)
	}
	if filter.Status != nil {
		status := strings.ToUpper(strings.Replace(*filter.Status, "'", "", -1))
		whereQuery += fmt.Sprintf(" AND u.status = '%s'", status)
	}

	orderQuery := "ORDER BY u.last_name asc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.email,
			u.first_name,
			u.last_name,
			u.phone,
			u.role,
			u.status
		FROM users u
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Email,
			&detail.FirstName,
			&detail.LastName,
			&detail.Phone,
			&detail.Role,
			&detail.Status); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM users u
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetMe returns the authenticated user's own profile, PIN included.
func (r Repository) GetMe(ctx context.Context) (GetMeResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetMeResponse{}, err
	}

	var detail GetMeResponse

	err = r.QueryRowContext(ctx, `
		SELECT
			u.id,
			u.email,
			u.first_name,
			u.last_name,
			u.phone,
			u.role,
			u.status,
			u.pin,
			u.pin_changed_at
		FROM users u
		WHERE u.deleted_at IS NULL AND u.id = $1
	`, claims.UserId).Scan(
		&detail.ID,
		&detail.Email,
		&detail.FirstName,
		&detail.LastName,
		&detail.Phone,
		&detail.Role,
		&detail.Status,
		&detail.Pin,
		&detail.PinChangedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMeResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetMeResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Email", "Password", "FirstName", "LastName"); err != nil {
		return CreateResponse{}, err
	}

	emailUsed := false
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL)`,
		*request.Email).Scan(&emailUsed); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
	}
	if emailUsed {
		return CreateResponse{}, web.NewRequestError(errors.New("email already in use"), http.StatusBadRequest)
	}

	role := "EMPLOYEE"
	if request.Role != nil {
		role = strings.ToUpper(*request.Role)
	}
	if role != auth.RoleEmployee && role != auth.RoleManager && role != auth.RoleAdmin {
		return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, MANAGER or ADMIN"), http.StatusBadRequest)
	}

	if request.Pin != nil {
		if err := pin.Validate(*request.Pin); err != nil {
			return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		if err := r.checkPinAvailable(ctx, *request.Pin, 0); err != nil {
			return CreateResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)
	status := "ACTIVE"

	var response CreateResponse
	response.Email = request.Email
	response.Password = &hashedPassword
	response.FirstName = request.FirstName
	response.LastName = request.LastName
	response.Phone = request.Phone
	response.Role = &role
	response.Status = &status
	response.Pin = request.Pin
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Email != nil {
		q.Set("email = ?", *request.Email)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	if request.FirstName != nil {
		q.Set("first_name = ?", *request.FirstName)
	}
	if request.LastName != nil {
		q.Set("last_name = ?", *request.LastName)
	}
	if request.Phone != nil {
		q.Set("phone = ?", *request.Phone)
	}
	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleEmployee && role != auth.RoleManager && role != auth.RoleAdmin {
			return web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, MANAGER or ADMIN"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}
	if request.Status != nil {
		status := strings.ToUpper(*request.Status)
		if status != "ACTIVE" && status != "INACTIVE" {
			return web.NewRequestError(errors.New("incorrect status. status should be ACTIVE or INACTIVE"), http.StatusBadRequest)
		}
		q.Set("status = ?", status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

// UpdateMyPin changes the caller's own kiosk PIN after policy and
// availability checks. The partial unique index on (pin) for ACTIVE users is
// the real guard; the SELECT here only produces a friendlier error.
func (r Repository) UpdateMyPin(ctx context.Context, request UpdatePinRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "NewPin"); err != nil {
		return err
	}

	if err := pin.Validate(*request.NewPin); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := r.checkPinAvailable(ctx, *request.NewPin, claims.UserId); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", claims.UserId)
	q.Set("pin = ?", *request.NewPin)
	q.Set("pin_changed_at = ?", time.Now())
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating pin"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "users", id)
}

func (r Repository) checkPinAvailable(ctx context.Context, newPin string, selfID int) error {
	pinUsed := false
	if err := r.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM users
			WHERE pin = $1 AND id != $2 AND status = 'ACTIVE' AND deleted_at IS NULL
		)`, newPin, selfID).Scan(&pinUsed); err != nil {
		return web.NewRequestError(errors.Wrap(err, "pin check"), http.StatusInternalServerError)
	}
	if pinUsed {
		return web.NewRequestError(errors.New("this PIN is already in use by another employee"), http.StatusBadRequest)
	}
	return nil
}
