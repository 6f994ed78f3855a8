package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mistriBack/internal/models"
)

type MechanicRepository struct {
	DB *sql.DB
}

const mechanicColumns = `m.id, m.user_id, m.username, m.name, m.category, m.state, m.district, m.village,
       m.per_day_cost, m.contact_number, m.email, m.experience, m.description, m.availability,
       m.rating, m.completed_jobs, m.profile_image_url, m.skills, m.social_links,
       m.latitude, m.longitude, m.email_verified, m.phone_verified, m.is_featured,
       m.portfolio_images, m.created_at, m.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMechanic(row rowScanner) (models.Mechanic, error) {
	var m models.Mechanic
	var profileImageURL sql.NullString
	var skillsJSON, socialLinksJSON, portfolioJSON sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(
		&m.ID, &m.UserID, &m.Username, &m.Name, &m.Category, &m.State, &m.District, &m.Village,
		&m.PerDayCost, &m.ContactNumber, &m.Email, &m.Experience, &m.Description, &m.Availability,
		&m.Rating, &m.CompletedJobs, &profileImageURL, &skillsJSON, &socialLinksJSON,
		&latitude, &longitude, &m.EmailVerified, &m.PhoneVerified, &m.IsFeatured,
		&portfolioJSON, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return models.Mechanic{}, err
	}

	if profileImageURL.Valid && profileImageURL.String != "" {
		m.ProfileImageURL = &profileImageURL.String
	}
	if latitude.Valid {
		m.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		m.Longitude = &longitude.Float64
	}
	m.Skills = decodeStringList(skillsJSON)
	m.SocialLinks = decodeSocialLinks(socialLinksJSON)
	m.PortfolioImages = decodeStringList(portfolioJSON)
	return m, nil
}

// ListMechanics returns the whole directory, newest registration first.
func (r *MechanicRepository) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM mechanics m
		ORDER BY m.created_at DESC
	`, mechanicColumns)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := []models.Mechanic{}
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		mechanics = append(mechanics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mechanics rows error: %w", err)
	}
	return mechanics, nil
}

func (r *MechanicRepository) GetMechanicByID(ctx context.Context, id string) (models.Mechanic, error) {
	query := fmt.Sprintf(`SELECT %s FROM mechanics m WHERE m.id = ?`, mechanicColumns)

	m, err := scanMechanic(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Mechanic{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicRepository) GetMechanicByUserID(ctx context.Context, userID string) (models.Mechanic, error) {
	query := fmt.Sprintf(`SELECT %s FROM mechanics m WHERE m.user_id = ?`, mechanicColumns)

	m, err := scanMechanic(r.DB.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return models.Mechanic{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicRepository) CreateMechanic(ctx context.Context, m models.Mechanic) (models.Mechanic, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM mechanics WHERE username = ?`, m.Username).Scan(&count); err != nil {
		return models.Mechanic{}, err
	}
	if count > 0 {
		return models.Mechanic{}, models.ErrDuplicateUsername
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM mechanics WHERE user_id = ?`, m.UserID).Scan(&count); err != nil {
		return models.Mechanic{}, err
	}
	if count > 0 {
		return models.Mechanic{}, models.ErrDuplicateProfile
	}

	m.ID = uuid.New().String()
	m.Rating = 0
	m.CompletedJobs = 0
	m.CreatedAt = time.Now()

	query := `
		INSERT INTO mechanics
			(id, user_id, username, name, category, state, district, village,
			 per_day_cost, contact_number, email, experience, description, availability,
			 rating, completed_jobs, profile_image_url, skills, social_links,
			 latitude, longitude, email_verified, phone_verified, is_featured,
			 portfolio_images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.UserID, m.Username, m.Name, m.Category, m.State, m.District, m.Village,
		m.PerDayCost, m.ContactNumber, m.Email, m.Experience, m.Description, m.Availability,
		m.Rating, m.CompletedJobs, nullableString(m.ProfileImageURL), encodeStringList(m.Skills),
		encodeSocialLinks(m.SocialLinks), nullableFloat(m.Latitude), nullableFloat(m.Longitude),
		m.EmailVerified, m.PhoneVerified, m.IsFeatured, encodeStringList(m.PortfolioImages),
	)
	if err != nil {
		return models.Mechanic{}, err
	}
	return m, nil
}

// UpdateMechanic applies a sparse patch to the profile owned by userID.
// Only non-nil fields are written, so an explicit empty string or zero is a
// real update while an absent field is left as is.
func (r *MechanicRepository) UpdateMechanic(ctx context.Context, userID string, upd models.MechanicUpdate) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM mechanics WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrNoRecord
	}

	if upd.Username != nil {
		if err := r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM mechanics WHERE username = ? AND user_id <> ?`,
			*upd.Username, userID).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return models.ErrDuplicateUsername
		}
	}

	setClauses := []string{}
	args := []any{}
	set := func(column string, value any) {
		setClauses = append(setClauses, column+" = ?")
		args = append(args, value)
	}

	if upd.Username != nil {
		set("username", *upd.Username)
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.State != nil {
		set("state", *upd.State)
	}
	if upd.District != nil {
		set("district", *upd.District)
	}
	if upd.Village != nil {
		set("village", *upd.Village)
	}
	if upd.PerDayCost != nil {
		set("per_day_cost", *upd.PerDayCost)
	}
	if upd.ContactNumber != nil {
		set("contact_number", *upd.ContactNumber)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Experience != nil {
		set("experience", *upd.Experience)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Availability != nil {
		set("availability", *upd.Availability)
	}
	if upd.CompletedJobs != nil {
		set("completed_jobs", *upd.CompletedJobs)
	}
	if upd.ProfileImageURL != nil {
		set("profile_image_url", *upd.ProfileImageURL)
	}
	if upd.Skills != nil {
		set("skills", encodeStringList(*upd.Skills))
	}
	if upd.SocialLinks != nil {
		set("social_links", encodeSocialLinks(upd.SocialLinks))
	}
	if upd.Latitude != nil {
		set("latitude", *upd.Latitude)
	}
	if upd.Longitude != nil {
		set("longitude", *upd.Longitude)
	}
	if upd.EmailVerified != nil {
		set("email_verified", *upd.EmailVerified)
	}
	if upd.PhoneVerified != nil {
		set("phone_verified", *upd.PhoneVerified)
	}
	if upd.IsFeatured != nil {
		set("is_featured", *upd.IsFeatured)
	}
	if upd.PortfolioImages != nil {
		set("portfolio_images", encodeStringList(*upd.PortfolioImages))
	}

	if len(setClauses) == 0 {
		return nil
	}
	set("updated_at", time.Now())

	query := fmt.Sprintf(`UPDATE mechanics SET %s WHERE user_id = ?`, strings.Join(setClauses, ", "))
	args = append(args, userID)

	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// IsUsernameAvailable checks the handle, optionally ignoring the profile of
// excludeUserID so an owner can keep their current handle on update.
func (r *MechanicRepository) IsUsernameAvailable(ctx context.Context, username, excludeUserID string) (bool, error) {
	query := `SELECT COUNT(*) FROM mechanics WHERE username = ?`
	args := []any{username}
	if excludeUserID != "" {
		query += ` AND user_id <> ?`
		args = append(args, excludeUserID)
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *MechanicRepository) UpdateRating(ctx context.Context, mechanicID string, rating float64) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE mechanics SET rating = ? WHERE id = ?`, rating, mechanicID)
	return err
}

func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
