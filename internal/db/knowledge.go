package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// FAQ Methods
// -----------------------------------------------------------------------------

// CreateFAQ inserts a knowledge-base entry
func (db *DB) CreateFAQ(ctx context.Context, f *FAQ) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO faqs (question, answer, keywords)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		f.Question, f.Answer, f.Keywords,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

// GetFAQ retrieves a knowledge-base entry by ID
func (db *DB) GetFAQ(ctx context.Context, id uuid.UUID) (*FAQ, error) {
	var f FAQ
	err := db.pool.QueryRow(ctx,
		`SELECT id, question, answer, keywords, created_at
		 FROM faqs WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.Question, &f.Answer, &f.Keywords, &f.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return &f, nil
}

// ListFAQs retrieves all knowledge-base entries, oldest first
func (db *DB) ListFAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question, answer, keywords, created_at
		 FROM faqs ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Keywords, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, nil
}

// UpdateFAQAnswer replaces the answer of an existing entry
func (db *DB) UpdateFAQAnswer(ctx context.Context, id uuid.UUID, answer string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE faqs SET answer = $1 WHERE id = $2`,
		answer, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("faq not found: %s", id)
	}
	return nil
}

// DeleteFAQ removes a knowledge-base entry
func (db *DB) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("faq not found: %s", id)
	}
	return nil
}

// CountFAQs counts knowledge-base entries
func (db *DB) CountFAQs(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}

// -----------------------------------------------------------------------------
// Market Skill Methods
// -----------------------------------------------------------------------------

// ListMarketSkills retrieves every role profile
func (db *DB) ListMarketSkills(ctx context.Context) ([]MarketSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_role, required_skills, insight
		 FROM market_skills ORDER BY job_role ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list market skills: %w", err)
	}
	defer rows.Close()

	var skills []MarketSkill
	for rows.Next() {
		var ms MarketSkill
		if err := rows.Scan(&ms.ID, &ms.JobRole, &ms.RequiredSkills, &ms.Insight); err != nil {
			return nil, fmt.Errorf("failed to scan market skill: %w", err)
		}
		skills = append(skills, ms)
	}
	return skills, nil
}

// CountMarketSkills counts role profiles
func (db *DB) CountMarketSkills(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM market_skills`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count market skills: %w", err)
	}
	return count, nil
}
