package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/energy-jobboard/internal/types"
)

// Pagination bounds for ListEnrichedJobs
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// UnmatchedRole is the CountByRole key for jobs with no role assignment.
const UnmatchedRole = "unmatched"

const enrichedJobColumns = `id, url, title, company, location, description, source, posted_at,
        skills, required_skills, preferred_skills, keywords, canonical_skills, skill_targets,
        role_id, role_name, role_confidence, matched_keyword, enriched_at`

// ListFilters narrows ListEnrichedJobs. Empty fields do not filter.
type ListFilters struct {
	RoleID     string // Exact role id, or UnmatchedRole for jobs with none
	Confidence string // high, medium or low
	Skill      string // Canonical skill name
	Limit      int
	Offset     int
}

// UpsertEnrichedJob inserts or replaces a job keyed by its ID. A job without
// an ID is assigned a new UUID, which is written back to job. Any non-empty
// string is a valid ID.
func (db *DB) UpsertEnrichedJob(ctx context.Context, job *types.EnrichedJob) error {
	if job == nil {
		return errors.New("job is nil")
	}
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.EnrichedAt.IsZero() {
		job.EnrichedAt = time.Now().UTC()
	}

	skills, err := marshalList(job.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	required, err := marshalList(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	preferred, err := marshalList(job.PreferredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal preferred skills: %w", err)
	}
	keywords, err := marshalList(job.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}
	canonical, err := marshalList(job.CanonicalSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal canonical skills: %w", err)
	}

	var targets []byte
	if job.SkillTargets != nil {
		targets, err = json.Marshal(job.SkillTargets)
		if err != nil {
			return fmt.Errorf("failed to marshal skill targets: %w", err)
		}
	}

	var roleID, roleName, confidence, keyword *string
	if job.Role != nil {
		roleID = &job.Role.RoleID
		roleName = &job.Role.RoleName
		confidence = &job.Role.Confidence
		keyword = &job.Role.MatchedKeyword
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO enriched_jobs (`+enrichedJobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 ON CONFLICT (id) DO UPDATE SET
		     url = EXCLUDED.url,
		     title = EXCLUDED.title,
		     company = EXCLUDED.company,
		     location = EXCLUDED.location,
		     description = EXCLUDED.description,
		     source = EXCLUDED.source,
		     posted_at = EXCLUDED.posted_at,
		     skills = EXCLUDED.skills,
		     required_skills = EXCLUDED.required_skills,
		     preferred_skills = EXCLUDED.preferred_skills,
		     keywords = EXCLUDED.keywords,
		     canonical_skills = EXCLUDED.canonical_skills,
		     skill_targets = EXCLUDED.skill_targets,
		     role_id = EXCLUDED.role_id,
		     role_name = EXCLUDED.role_name,
		     role_confidence = EXCLUDED.role_confidence,
		     matched_keyword = EXCLUDED.matched_keyword,
		     enriched_at = EXCLUDED.enriched_at,
		     updated_at = NOW()`,
		job.ID, nullString(job.URL), job.Title, nullString(job.Company), nullString(job.Location),
		nullString(job.Description), nullString(job.Source), nullTime(job.PostedAt),
		skills, required, preferred, keywords, canonical, targets,
		roleID, roleName, confidence, keyword, job.EnrichedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert enriched job: %w", err)
	}
	return nil
}

// GetEnrichedJob retrieves a job by ID. It returns nil, nil when no job has
// that ID.
func (db *DB) GetEnrichedJob(ctx context.Context, id string) (*types.EnrichedJob, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+enrichedJobColumns+` FROM enriched_jobs WHERE id = $1`,
		id,
	)
	job, err := scanEnrichedJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enriched job: %w", err)
	}
	return job, nil
}

// ListEnrichedJobs lists jobs newest first and returns the total number of
// jobs matching filters before pagination.
func (db *DB) ListEnrichedJobs(ctx context.Context, filters ListFilters) ([]types.EnrichedJob, int, error) {
	whereClause, args := buildWhere(filters)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM enriched_jobs %s", whereClause)
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count enriched jobs: %w", err)
	}

	limit, offset := pageBounds(filters.Limit, filters.Offset)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM enriched_jobs %s
		 ORDER BY enriched_at DESC, id
		 LIMIT $%d OFFSET $%d`,
		enrichedJobColumns, whereClause, len(args)-1, len(args),
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list enriched jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.EnrichedJob{}
	for rows.Next() {
		job, err := scanEnrichedJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan enriched job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list enriched jobs: %w", err)
	}
	return jobs, total, nil
}

// CountByRole returns the number of stored jobs per role id. Jobs with no
// role are counted under UnmatchedRole.
func (db *DB) CountByRole(ctx context.Context) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT COALESCE(role_id, $1), COUNT(*) FROM enriched_jobs GROUP BY 1`,
		UnmatchedRole,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by role: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var roleID string
		var n int
		if err := rows.Scan(&roleID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan role count: %w", err)
		}
		counts[roleID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count jobs by role: %w", err)
	}
	return counts, nil
}

// DeleteEnrichedJob removes a job by ID. It reports whether a row was deleted.
func (db *DB) DeleteEnrichedJob(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM enriched_jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete enriched job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// buildWhere turns filters into a WHERE clause with positional arguments.
func buildWhere(filters ListFilters) (string, []any) {
	var conditions []string
	var args []any
	argIndex := 1

	switch roleID := strings.TrimSpace(filters.RoleID); roleID {
	case "":
	case UnmatchedRole:
		conditions = append(conditions, "role_id IS NULL")
	default:
		conditions = append(conditions, fmt.Sprintf("role_id = $%d", argIndex))
		args = append(args, roleID)
		argIndex++
	}

	if c := strings.ToLower(strings.TrimSpace(filters.Confidence)); c != "" {
		conditions = append(conditions, fmt.Sprintf("role_confidence = $%d", argIndex))
		args = append(args, c)
		argIndex++
	}

	if s := strings.TrimSpace(filters.Skill); s != "" {
		// jsonb containment so the GIN index applies
		conditions = append(conditions, fmt.Sprintf("canonical_skills @> jsonb_build_array($%d::text)", argIndex))
		args = append(args, s)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func scanEnrichedJob(row pgx.Row) (*types.EnrichedJob, error) {
	var job types.EnrichedJob
	var url, company, location, description, source *string
	var postedAt *time.Time
	var skills, required, preferred, keywords, canonical, targets []byte
	var roleID, roleName, confidence, keyword *string

	err := row.Scan(
		&job.ID, &url, &job.Title, &company, &location, &description, &source, &postedAt,
		&skills, &required, &preferred, &keywords, &canonical, &targets,
		&roleID, &roleName, &confidence, &keyword, &job.EnrichedAt,
	)
	if err != nil {
		return nil, err
	}

	job.URL = deref(url)
	job.Company = deref(company)
	job.Location = deref(location)
	job.Description = deref(description)
	job.Source = deref(source)
	if postedAt != nil {
		job.PostedAt = postedAt.UTC()
	}
	job.EnrichedAt = job.EnrichedAt.UTC()

	// Parse JSONB fields
	_ = json.Unmarshal(skills, &job.Skills)
	_ = json.Unmarshal(required, &job.RequiredSkills)
	_ = json.Unmarshal(preferred, &job.PreferredSkills)
	_ = json.Unmarshal(keywords, &job.Keywords)
	job.CanonicalSkills = []string{}
	_ = json.Unmarshal(canonical, &job.CanonicalSkills)
	if targets != nil {
		var st types.SkillTargets
		if err := json.Unmarshal(targets, &st); err == nil {
			job.SkillTargets = &st
		}
	}

	if roleID != nil {
		job.Role = &types.RoleAssignment{
			RoleID:         *roleID,
			RoleName:       deref(roleName),
			Confidence:     deref(confidence),
			MatchedKeyword: deref(keyword),
		}
	}
	return &job, nil
}

func marshalList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
