package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RayBDev/devconnector/internal/models"
)

type ProfileRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewProfileRepo(pool *pgxpool.Pool, timeout time.Duration) *ProfileRepo {
	return &ProfileRepo{pool: pool, timeout: timeout}
}

const profileColumns = `
	id, user_id, handle, status, skills, company, website, location,
	bio, github_username, experience, education, created_at, updated_at`

// Upsert creates the caller's profile or replaces its scalar fields,
// keyed by user id. Experience and education are managed separately.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (
			id, user_id, handle, status, skills, company, website,
			location, bio, github_username
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id) DO UPDATE SET
			handle = EXCLUDED.handle,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`,
		profile.ID,
		profile.UserID,
		profile.Handle,
		profile.Status,
		profile.Skills,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Bio,
		profile.GithubUsername,
	)

	if err := row.Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return r.getOne(ctx, "WHERE user_id = $1", userID)
}

func (r *ProfileRepo) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return r.getOne(ctx, "WHERE handle = $1", handle)
}

func (r *ProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// AddExperience appends an entry to the profile's experience history,
// newest first, in a single statement.
func (r *ProfileRepo) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	return r.prependJSON(ctx, userID, "experience", exp)
}

func (r *ProfileRepo) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	return r.prependJSON(ctx, userID, "education", edu)
}

func (r *ProfileRepo) prependJSON(ctx context.Context, userID, column string, entry any) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	encoded, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode %s entry: %w", column, err)
	}

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE profiles
		SET %[1]s = jsonb_build_array($2::jsonb) || %[1]s, updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+profileColumns, column), userID, string(encoded))

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepo) getOne(ctx context.Context, where string, arg any) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
	`+where, arg)

	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Handle,
		&profile.Status,
		&profile.Skills,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Bio,
		&profile.GithubUsername,
		&profile.Experience,
		&profile.Education,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	if profile.Experience == nil {
		profile.Experience = []models.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []models.Education{}
	}
	return &profile, nil
}
